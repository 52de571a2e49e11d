// Package main is the ShareIt gateway: it validates request shape and
// forwards everything else to the backend server.
package main

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/PUprojects/shareit/app/gateway"
	"github.com/PUprojects/shareit/app/gateway/client"
	"github.com/PUprojects/shareit/config"
)

func main() {
	cfg := config.LoadGateway()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	h := &gateway.Handlers{
		Cl:  client.New(cfg.ServerURL),
		V:   validator.New(),
		Log: log,
	}

	e := echo.New()
	e.HideBanner = true
	gateway.RegisterMiddlewares(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	gateway.Register(e, h)

	log.Info("starting shareit gateway", "port", cfg.GatewayPort, "server_url", cfg.ServerURL)
	e.Logger.Fatal(e.Start(":" + cfg.GatewayPort))
}

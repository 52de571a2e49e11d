// Package main is the ShareIt backend server.
//
// @title           ShareIt API
// @version         1.0
// @description     Item sharing service (users, items, bookings, item requests).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/PUprojects/shareit/app/echoServer"
	bookingctrl "github.com/PUprojects/shareit/app/echoServer/controller/booking"
	itemctrl "github.com/PUprojects/shareit/app/echoServer/controller/item"
	requestctrl "github.com/PUprojects/shareit/app/echoServer/controller/request"
	userctrl "github.com/PUprojects/shareit/app/echoServer/controller/user"
	"github.com/PUprojects/shareit/app/echoServer/validation"
	"github.com/PUprojects/shareit/config"
	bookingrepo "github.com/PUprojects/shareit/repository/booking"
	itemrepo "github.com/PUprojects/shareit/repository/item"
	requestrepo "github.com/PUprojects/shareit/repository/request"
	userrepo "github.com/PUprojects/shareit/repository/user"
	bookingsvc "github.com/PUprojects/shareit/service/booking"
	itemsvc "github.com/PUprojects/shareit/service/item"
	requestsvc "github.com/PUprojects/shareit/service/request"
	usersvc "github.com/PUprojects/shareit/service/user"
	"github.com/PUprojects/shareit/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Error("schema init failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	ir := itemrepo.New(db)
	br := bookingrepo.New(db)
	rr := requestrepo.New(db)

	// services
	us := usersvc.New(ur)
	is := itemsvc.New(ir, ur, rr, br)
	bs := bookingsvc.New(br, ur, ir)
	rs := requestsvc.New(rr, ur, ir)

	// controllers
	v := validator.New()
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	requestC := &requestctrl.Controller{Svc: rs, V: v, Log: log}

	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		User:    userC,
		Item:    itemC,
		Booking: bookingC,
		Request: requestC,
	})

	log.Info("starting shareit server", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

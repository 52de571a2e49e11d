package gateway

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("gateway http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
			)
			return err
		}
	})
}

func Register(e *echo.Echo, h *Handlers) {
	// Users
	e.GET("/users", h.GetAllUsers)
	e.GET("/users/:id", h.GetUser)
	e.POST("/users", h.CreateUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)

	// Items
	e.POST("/items", h.CreateItem)
	e.PATCH("/items/:itemId", h.UpdateItem)
	e.GET("/items/:itemId", h.GetItem)
	e.GET("/items", h.GetItems)
	e.GET("/items/search", h.SearchItems)
	e.DELETE("/items/:itemId", h.DeleteItem)
	e.POST("/items/:itemId/comment", h.AddComment)

	// Bookings
	e.POST("/bookings", h.CreateBooking)
	e.PATCH("/bookings/:bookingId", h.ApproveBooking)
	e.GET("/bookings/:bookingId", h.GetBooking)
	e.GET("/bookings", h.GetBookings)
	e.GET("/bookings/owner", h.GetOwnerBookings)

	// Item requests
	e.POST("/requests", h.AddRequest)
	e.GET("/requests", h.GetRequests)
	e.GET("/requests/all", h.GetOtherRequests)
	e.GET("/requests/:requestId", h.GetRequest)
}

package echoServer

import (
	"github.com/labstack/echo/v4"

	bookingctrl "github.com/PUprojects/shareit/app/echoServer/controller/booking"
	itemctrl "github.com/PUprojects/shareit/app/echoServer/controller/item"
	requestctrl "github.com/PUprojects/shareit/app/echoServer/controller/request"
	userctrl "github.com/PUprojects/shareit/app/echoServer/controller/user"
)

type C struct {
	User    *userctrl.Controller
	Item    *itemctrl.Controller
	Booking *bookingctrl.Controller
	Request *requestctrl.Controller
}

func Register(e *echo.Echo, c C) {
	// Users
	e.GET("/users", c.User.GetAll)
	e.GET("/users/:id", c.User.Get)
	e.POST("/users", c.User.Create)
	e.PATCH("/users/:id", c.User.Update)
	e.DELETE("/users/:id", c.User.Delete)

	// Items
	e.POST("/items", c.Item.Create)
	e.PATCH("/items/:itemId", c.Item.Update)
	e.GET("/items/:itemId", c.Item.Get)
	e.GET("/items", c.Item.GetAllByUser)
	e.GET("/items/search", c.Item.Search)
	e.DELETE("/items/:itemId", c.Item.Delete)
	e.POST("/items/:itemId/comment", c.Item.AddComment)

	// Bookings
	e.POST("/bookings", c.Booking.Create)
	e.PATCH("/bookings/:bookingId", c.Booking.Approve)
	e.GET("/bookings/:bookingId", c.Booking.Get)
	e.GET("/bookings", c.Booking.GetByState)
	e.GET("/bookings/owner", c.Booking.GetByOwnerAndState)

	// Item requests
	e.POST("/requests", c.Request.Add)
	e.GET("/requests", c.Request.GetAllForUser)
	e.GET("/requests/all", c.Request.GetAllForOthers)
	e.GET("/requests/:requestId", c.Request.Get)
}

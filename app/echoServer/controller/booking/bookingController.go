package booking

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/PUprojects/shareit/app/echoServer/actor"
	"github.com/PUprojects/shareit/app/echoServer/respond"
	"github.com/PUprojects/shareit/model"
	bookingsvc "github.com/PUprojects/shareit/service/booking"
)

type Controller struct {
	Svc bookingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /bookings
func (h *Controller) Create(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req NewBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	b, err := h.Svc.Create(c.Request().Context(), req.ItemID, req.Start, req.End, uid)
	if err != nil {
		h.Log.Error("booking create", "err", err, "booker_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// PATCH /bookings/:bookingId?approved=
func (h *Controller) Approve(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "approved must be a boolean"})
	}

	b, err := h.Svc.Approve(c.Request().Context(), id, approved, uid)
	if err != nil {
		h.Log.Error("booking approve", "err", err, "booking_id", id, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings/:bookingId
func (h *Controller) Get(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	b, err := h.Svc.ByID(c.Request().Context(), id, uid)
	if err != nil {
		h.Log.Error("booking get", "err", err, "booking_id", id, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings?state=
func (h *Controller) GetByState(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	// An unrecognized token reaches the service as StateUnknown and
	// filters to an empty list; the gateway rejects it before that.
	state, _ := model.ParseState(stateToken(c))

	bookings, err := h.Svc.ByBookerAndState(c.Request().Context(), state, uid)
	if err != nil {
		h.Log.Error("booking list", "err", err, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// GET /bookings/owner?state=
func (h *Controller) GetByOwnerAndState(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	state, _ := model.ParseState(stateToken(c))

	bookings, err := h.Svc.ByOwnerAndState(c.Request().Context(), state, uid)
	if err != nil {
		h.Log.Error("booking owner list", "err", err, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func stateToken(c echo.Context) string {
	if s := c.QueryParam("state"); s != "" {
		return s
	}
	return "ALL"
}

package request

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/PUprojects/shareit/app/echoServer/actor"
	"github.com/PUprojects/shareit/app/echoServer/respond"
	requestsvc "github.com/PUprojects/shareit/service/request"
)

type Controller struct {
	Svc requestsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /requests
func (h *Controller) Add(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req NewRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	out, err := h.Svc.Add(c.Request().Context(), uid, req.Description)
	if err != nil {
		h.Log.Error("request add", "err", err, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /requests
func (h *Controller) GetAllForUser(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	out, err := h.Svc.AllForUser(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("request list", "err", err, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /requests/all
func (h *Controller) GetAllForOthers(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	out, err := h.Svc.AllForOthers(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("request list others", "err", err, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /requests/:requestId
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	out, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("request get", "err", err, "request_id", id)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/PUprojects/shareit/app/echoServer/respond"
	usersvc "github.com/PUprojects/shareit/service/user"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /users
func (h *Controller) GetAll(c echo.Context) error {
	users, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("user list", "err", err)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GET /users/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	u, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("user get", "err", err, "user_id", id)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// POST /users
func (h *Controller) Create(c echo.Context) error {
	var req NewUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	u, err := h.Svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		h.Log.Error("user create", "err", err)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// PATCH /users/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var req UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	u, err := h.Svc.Update(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		h.Log.Error("user update", "err", err, "user_id", id)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DELETE /users/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("user delete", "err", err, "user_id", id)
		return respond.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

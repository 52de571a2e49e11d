package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/PUprojects/shareit/app/echoServer/actor"
	"github.com/PUprojects/shareit/app/echoServer/respond"
	itemsvc "github.com/PUprojects/shareit/service/item"
)

type Controller struct {
	Svc itemsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /items
func (h *Controller) Create(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req NewItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	// required on *bool would reject an explicit false, so check presence
	// by hand.
	if req.Available == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "available must be set"})
	}

	it, err := h.Svc.Create(c.Request().Context(), uid, itemsvc.NewItem{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		h.Log.Error("item create", "err", err, "owner_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, it)
}

// PATCH /items/:itemId
func (h *Controller) Update(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var req UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}

	it, err := h.Svc.Update(c.Request().Context(), uid, id, itemsvc.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		h.Log.Error("item update", "err", err, "item_id", id, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// GET /items/:itemId
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	detail, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("item get", "err", err, "item_id", id)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// GET /items
func (h *Controller) GetAllByUser(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	items, err := h.Svc.AllByOwner(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("item list", "err", err, "owner_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GET /items/search?text=
func (h *Controller) Search(c echo.Context) error {
	items, err := h.Svc.Search(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		h.Log.Error("item search", "err", err)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// DELETE /items/:itemId
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("item delete", "err", err, "item_id", id)
		return respond.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// POST /items/:itemId/comment
func (h *Controller) AddComment(c echo.Context) error {
	uid, err := actor.ID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var req NewCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	comment, err := h.Svc.AddComment(c.Request().Context(), id, uid, req.Text)
	if err != nil {
		h.Log.Error("item comment", "err", err, "item_id", id, "user_id", uid)
		return respond.Error(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

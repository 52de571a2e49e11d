// Package gateway is the validating front tier: it checks the caller
// header and payload shape, then forwards to the ShareIt server and relays
// the answer.
package gateway

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/PUprojects/shareit/app/gateway/client"
	"github.com/PUprojects/shareit/model"
)

const userIDHeader = "X-Sharer-User-Id"

type Handlers struct {
	Cl  *client.Client
	V   *validator.Validate
	Log *slog.Logger
}

func userID(c echo.Context) (int64, bool) {
	raw := c.Request().Header.Get(userIDHeader)
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}

func (h *Handlers) relay(c echo.Context, resp *client.Response) error {
	if len(resp.Body) == 0 {
		return c.NoContent(resp.Status)
	}
	return c.JSONBlob(resp.Status, resp.Body)
}

func (h *Handlers) forward(c echo.Context, method, path string, uid int64, body any, query url.Values) error {
	resp, err := h.Cl.Forward(c.Request().Context(), method, path, uid, body, query)
	if err != nil {
		h.Log.Error("forward failed", "err", err, "method", method, "path", path)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "shareit server unavailable"})
	}
	return h.relay(c, resp)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func pathID(c echo.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	return id, err == nil && id > 0
}

// ----- users -----

func (h *Handlers) CreateUser(c echo.Context) error {
	var req NewUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	return h.forward(c, http.MethodPost, "/users", 0, req, nil)
}

func (h *Handlers) UpdateUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	var req UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	return h.forward(c, http.MethodPatch, "/users/"+strconv.FormatInt(id, 10), 0, req, nil)
}

func (h *Handlers) GetUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	return h.forward(c, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), 0, nil, nil)
}

func (h *Handlers) GetAllUsers(c echo.Context) error {
	return h.forward(c, http.MethodGet, "/users", 0, nil, nil)
}

func (h *Handlers) DeleteUser(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid user id")
	}
	return h.forward(c, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), 0, nil, nil)
}

// ----- items -----

func (h *Handlers) CreateItem(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	var req NewItemReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Available == nil {
		return badRequest(c, "available must be set")
	}
	return h.forward(c, http.MethodPost, "/items", uid, req, nil)
}

func (h *Handlers) UpdateItem(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	id, ok := pathID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}
	var req UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, http.MethodPatch, "/items/"+strconv.FormatInt(id, 10), uid, req, nil)
}

func (h *Handlers) GetItem(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	id, ok := pathID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}
	return h.forward(c, http.MethodGet, "/items/"+strconv.FormatInt(id, 10), uid, nil, nil)
}

func (h *Handlers) GetItems(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	return h.forward(c, http.MethodGet, "/items", uid, nil, nil)
}

func (h *Handlers) SearchItems(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	q := url.Values{"text": {c.QueryParam("text")}}
	return h.forward(c, http.MethodGet, "/items/search", uid, nil, q)
}

func (h *Handlers) DeleteItem(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	id, ok := pathID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}
	return h.forward(c, http.MethodDelete, "/items/"+strconv.FormatInt(id, 10), uid, nil, nil)
}

func (h *Handlers) AddComment(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	id, ok := pathID(c, "itemId")
	if !ok {
		return badRequest(c, "invalid item id")
	}
	var req NewCommentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	return h.forward(c, http.MethodPost, "/items/"+strconv.FormatInt(id, 10)+"/comment", uid, req, nil)
}

// ----- bookings -----

func (h *Handlers) CreateBooking(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	var req NewBookingReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	return h.forward(c, http.MethodPost, "/bookings", uid, req, nil)
}

func (h *Handlers) ApproveBooking(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	id, ok := pathID(c, "bookingId")
	if !ok {
		return badRequest(c, "invalid booking id")
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return badRequest(c, "approved must be a boolean")
	}
	q := url.Values{"approved": {strconv.FormatBool(approved)}}
	return h.forward(c, http.MethodPatch, "/bookings/"+strconv.FormatInt(id, 10), uid, nil, q)
}

func (h *Handlers) GetBooking(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	id, ok := pathID(c, "bookingId")
	if !ok {
		return badRequest(c, "invalid booking id")
	}
	return h.forward(c, http.MethodGet, "/bookings/"+strconv.FormatInt(id, 10), uid, nil, nil)
}

func (h *Handlers) GetBookings(c echo.Context) error {
	return h.listBookings(c, "/bookings")
}

func (h *Handlers) GetOwnerBookings(c echo.Context) error {
	return h.listBookings(c, "/bookings/owner")
}

// listBookings rejects unrecognized state tokens here so the server never
// sees them.
func (h *Handlers) listBookings(c echo.Context, path string) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	token := c.QueryParam("state")
	if token == "" {
		token = "ALL"
	}
	state, ok := model.ParseState(token)
	if !ok {
		return badRequest(c, "Unknown state: "+token)
	}
	q := url.Values{"state": {state.String()}}
	return h.forward(c, http.MethodGet, path, uid, nil, q)
}

// ----- item requests -----

func (h *Handlers) AddRequest(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	var req NewRequestReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	return h.forward(c, http.MethodPost, "/requests", uid, req, nil)
}

func (h *Handlers) GetRequests(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	return h.forward(c, http.MethodGet, "/requests", uid, nil, nil)
}

func (h *Handlers) GetOtherRequests(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return badRequest(c, "missing or invalid "+userIDHeader+" header")
	}
	return h.forward(c, http.MethodGet, "/requests/all", uid, nil, nil)
}

func (h *Handlers) GetRequest(c echo.Context) error {
	id, ok := pathID(c, "requestId")
	if !ok {
		return badRequest(c, "invalid request id")
	}
	return h.forward(c, http.MethodGet, "/requests/"+strconv.FormatInt(id, 10), 0, nil, nil)
}

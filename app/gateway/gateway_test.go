package gateway

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/PUprojects/shareit/app/gateway/client"
)

type captured struct {
	method string
	path   string
	query  string
	userID string
	body   string
}

// stubServer plays the ShareIt server: it records what arrived and answers
// with a fixed status and body.
func stubServer(t *testing.T, status int, reply string) (*httptest.Server, *captured) {
	t.Helper()

	got := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.userID = r.Header.Get("X-Sharer-User-Id")
		b, _ := io.ReadAll(r.Body)
		got.body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, reply)
	}))
	t.Cleanup(ts.Close)
	return ts, got
}

func newHandlers(serverURL string) *Handlers {
	return &Handlers{
		Cl:  client.New(serverURL),
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body, uid string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if uid != "" {
		req.Header.Set(userIDHeader, uid)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateUser_ForwardsAndRelays(t *testing.T) {
	ts, got := stubServer(t, http.StatusCreated, `{"id":1,"name":"Alice","email":"alice@example.com"}`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.CreateUser, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com"}`, "", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":1,"name":"Alice","email":"alice@example.com"}`, rec.Body.String())
	require.Equal(t, http.MethodPost, got.method)
	require.Equal(t, "/users", got.path)
	require.Empty(t, got.userID, "user routes carry no identity header")
}

func TestCreateUser_RejectsBadEmail(t *testing.T) {
	ts, got := stubServer(t, http.StatusCreated, `{}`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.CreateUser, http.MethodPost, "/users",
		`{"name":"Alice","email":"not-an-email"}`, "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, got.method, "invalid payload must never reach the server")
}

func TestCreateItem_RequiresHeader(t *testing.T) {
	ts, got := stubServer(t, http.StatusCreated, `{}`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.CreateItem, http.MethodPost, "/items",
		`{"name":"drill","description":"d","available":true}`, "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, got.method)
}

func TestCreateItem_AvailableFalsePasses(t *testing.T) {
	ts, got := stubServer(t, http.StatusCreated, `{"id":1}`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.CreateItem, http.MethodPost, "/items",
		`{"name":"drill","description":"d","available":false}`, "1", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "1", got.userID)
	require.Contains(t, got.body, `"available":false`)
}

func TestCreateItem_MissingAvailable(t *testing.T) {
	ts, _ := stubServer(t, http.StatusCreated, `{}`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.CreateItem, http.MethodPost, "/items",
		`{"name":"drill","description":"d"}`, "1", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_RejectsPastStart(t *testing.T) {
	ts, got := stubServer(t, http.StatusCreated, `{}`)
	h := newHandlers(ts.URL)

	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	rec := doRequest(t, h.CreateBooking, http.MethodPost, "/bookings",
		`{"itemId":1,"start":"`+past+`","end":"`+future+`"}`, "5", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, got.method)
}

func TestCreateBooking_RejectsEndBeforeStart(t *testing.T) {
	ts, _ := stubServer(t, http.StatusCreated, `{}`)
	h := newHandlers(ts.URL)

	start := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	rec := doRequest(t, h.CreateBooking, http.MethodPost, "/bookings",
		`{"itemId":1,"start":"`+start+`","end":"`+end+`"}`, "5", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_Forwards(t *testing.T) {
	ts, got := stubServer(t, http.StatusCreated, `{"id":9,"status":"WAITING"}`)
	h := newHandlers(ts.URL)

	start := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(2 * time.Hour).UTC().Format(time.RFC3339)
	rec := doRequest(t, h.CreateBooking, http.MethodPost, "/bookings",
		`{"itemId":1,"start":"`+start+`","end":"`+end+`"}`, "5", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "/bookings", got.path)
	require.Equal(t, "5", got.userID)
}

func TestGetBookings_UnknownState(t *testing.T) {
	ts, got := stubServer(t, http.StatusOK, `[]`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.GetBookings, http.MethodGet, "/bookings?state=BOGUS", "", "5", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Unknown state: BOGUS")
	require.Empty(t, got.method)
}

func TestGetBookings_CanonicalizesState(t *testing.T) {
	ts, got := stubServer(t, http.StatusOK, `[]`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.GetBookings, http.MethodGet, "/bookings?state=current", "", "5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "state=CURRENT", got.query)
}

func TestGetBookings_DefaultState(t *testing.T) {
	ts, got := stubServer(t, http.StatusOK, `[]`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.GetBookings, http.MethodGet, "/bookings", "", "5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "state=ALL", got.query)
}

func TestRelay_NoContent(t *testing.T) {
	ts, _ := stubServer(t, http.StatusNoContent, "")
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.DeleteUser, http.MethodDelete, "/users/1", "", "", map[string]string{"id": "1"})

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestForward_ServerDown(t *testing.T) {
	ts, _ := stubServer(t, http.StatusOK, `[]`)
	ts.Close()
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.GetAllUsers, http.MethodGet, "/users", "", "", nil)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "shareit server unavailable")
}

func TestAddComment_RejectsBlankText(t *testing.T) {
	ts, got := stubServer(t, http.StatusCreated, `{}`)
	h := newHandlers(ts.URL)

	rec := doRequest(t, h.AddComment, http.MethodPost, "/items/1/comment",
		`{"text":""}`, "5", map[string]string{"itemId": "1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, got.method)
}

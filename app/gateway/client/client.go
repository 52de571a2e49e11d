// Package client forwards validated gateway requests to the ShareIt server
// and hands back the status and body untouched.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PUprojects/shareit/util/httpx"
)

const userIDHeader = "X-Sharer-User-Id"

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: httpx.Client(),
	}
}

type Response struct {
	Status int
	Body   []byte
}

// Forward sends the request on to the server. A zero userID leaves the
// identity header off. body may be nil; query may be nil.
func (c *Client) Forward(ctx context.Context, method, path string, userID int64, body any, query url.Values) (*Response, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID > 0 {
		req.Header.Set(userIDHeader, strconv.FormatInt(userID, 10))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{Status: resp.StatusCode, Body: out}, nil
}

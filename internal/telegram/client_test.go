package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newClientWithTransport(rt roundTripFunc) *Client {
	c := NewClient("https://bot.example.com/", 10*time.Second)
	c.httpClient = &http.Client{Transport: rt}
	return c
}

func TestClient_SendMessage(t *testing.T) {
	c := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/bottok-1/sendMessage", req.URL.Path)
		assert.Equal(t, "bot.example.com", req.URL.Host)

		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "-1001", body["chat_id"])
		assert.Equal(t, "HTML", body["parse_mode"])
		assert.Equal(t, "<b>hi</b>", body["text"])

		return jsonResponse(200, `{"ok":true,"result":{"message_id":1}}`), nil
	})

	assert.NoError(t, c.SendMessage(context.Background(), "tok-1", "-1001", "<b>hi</b>"))
}

func TestClient_SendMessage_APIError(t *testing.T) {
	c := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(400, `{"ok":false,"description":"Bad Request: chat not found"}`), nil
	})

	err := c.SendMessage(context.Background(), "tok-1", "42", "x")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Contains(t, apiErr.Description, "chat not found")
}

func TestClient_GetMe(t *testing.T) {
	c := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/bottok-2/getMe", req.URL.Path)
		return jsonResponse(200, `{"ok":true,"result":{"id":7,"is_bot":true,"first_name":"Gestman","username":"gestman_bot"}}`), nil
	})

	info, err := c.GetMe(context.Background(), "tok-2")

	require.NoError(t, err)
	assert.Equal(t, "gestman_bot", info.Username)
	assert.True(t, info.IsBot)
}

func TestClient_EmptyTokenAndTransportFailure(t *testing.T) {
	c := newClientWithTransport(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	assert.ErrorIs(t, c.SendMessage(context.Background(), "", "1", "x"), ErrEmptyToken)

	_, err := c.GetMe(context.Background(), "tok")
	assert.ErrorContains(t, err, "connection refused")
}

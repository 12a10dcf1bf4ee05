package vk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestly/harvest-cli/internal/core/domain"
)

// newTestClient points a client at a stub VK endpoint.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token")
	client.baseURL = server.URL + "/method/"
	return client
}

func TestClient_GetHistory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/method/messages.getHistory", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-token", r.Form.Get("access_token"))
		assert.Equal(t, "5.199", r.Form.Get("v"))
		assert.Equal(t, "2000000123", r.Form.Get("peer_id"))
		assert.Equal(t, "200", r.Form.Get("count"))
		assert.Equal(t, "400", r.Form.Get("offset"))

		fmt.Fprint(w, `{"response":{"count":2,"items":[
			{"id":9,"date":1700000100,"from_id":55,"text":"hi","attachments":[{"type":"photo"}]},
			{"id":8,"date":1700000000,"from_id":55,"text":"","fwd_messages":[{"id":1}]}
		]}}`)
	})

	items, err := client.GetHistory(context.Background(), domain.ChatPeer(123), 200, 400)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(9), items[0].ID)
	assert.Equal(t, "hi", items[0].Text)
	require.Len(t, items[0].Attachments, 1)
	assert.Equal(t, "photo", items[0].Attachments[0].Type)
	assert.Equal(t, "", items[1].Text)
	assert.True(t, items[1].HasForward())
}

func TestClient_GetHistory_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"error":{"error_code":5,"error_msg":"User authorization failed"}}`)
	})

	_, err := client.GetHistory(context.Background(), domain.UserPeer(1), 10, 0)

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 5, apiErr.Code)
	assert.Equal(t, "messages.getHistory", apiErr.Method)
	assert.True(t, IsAuthFailure(err))
	assert.False(t, IsRateLimited(err))
}

func TestClient_ResolveScreenName_User(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/method/utils.resolveScreenName", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "durov", r.Form.Get("screen_name"))

		fmt.Fprint(w, `{"response":{"type":"user","object_id":1}}`)
	})

	resolution, err := client.ResolveScreenName(context.Background(), "durov")

	require.NoError(t, err)
	require.NotNil(t, resolution)
	assert.Equal(t, "user", resolution.Kind)
	assert.Equal(t, int64(1), resolution.ObjectID)
}

func TestClient_ResolveScreenName_Unknown(t *testing.T) {
	// VK answers unknown names with an empty array payload.
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"response":[]}`)
	})

	resolution, err := client.ResolveScreenName(context.Background(), "no-such-name")

	require.NoError(t, err)
	assert.Nil(t, resolution)
}

func TestClient_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	_, err := client.GetHistory(context.Background(), domain.UserPeer(1), 10, 0)

	assert.Error(t, err)
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient("test-token")
	client.baseURL = "http://127.0.0.1:1/method/"

	_, err := client.GetHistory(context.Background(), domain.UserPeer(1), 10, 0)

	assert.Error(t, err)
}

func TestAPIError_RateLimited(t *testing.T) {
	err := &APIError{Code: 6, Message: "Too many requests per second", Method: "messages.getHistory"}

	assert.True(t, IsRateLimited(err))
	assert.False(t, IsAuthFailure(err))
	assert.Contains(t, err.Error(), "messages.getHistory")
}

// Package vk ingests VK dialog history: a thin API client, the paginated
// history fetch loop, and peer-id normalisation.
package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

const (
	// apiBase is the VK method-call endpoint.
	apiBase = "https://api.vk.com/method/"

	// apiVersion is the pinned VK API version.
	apiVersion = "5.199"
)

// TokenMode selects which access token a client authenticates with.
type TokenMode string

const (
	// ModeUser reads personal dialogs and conversations (user token with
	// messages+offline scope).
	ModeUser TokenMode = "user"

	// ModeGroup reads a community's dialogs (group token with messages
	// scope).
	ModeGroup TokenMode = "group"
)

// Ensure Client implements the interface.
var _ driven.VKAPI = (*Client)(nil)

// Client is a minimal VK API client covering the methods the ingestion
// needs. It is safe for sequential use only; concurrent callers need
// external synchronisation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client authenticated with the given access token.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    apiBase,
		token:      token,
	}
}

// call performs one VK method call and decodes the response payload into out.
// API-level failures surface as *APIError; transport failures propagate as-is.
func (c *Client) call(ctx context.Context, method string, params url.Values, out any) error {
	params.Set("access_token", c.token)
	params.Set("v", apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+method,
		strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("vk: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vk: %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("vk: %s: read response: %w", method, err)
	}

	var envelope struct {
		Response json.RawMessage `json:"response"`
		Error    *APIError       `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("vk: %s: decode response: %w", method, err)
	}
	if envelope.Error != nil {
		envelope.Error.Method = method
		return envelope.Error
	}

	if out != nil && len(envelope.Response) > 0 {
		if err := json.Unmarshal(envelope.Response, out); err != nil {
			return fmt.Errorf("vk: %s: decode payload: %w", method, err)
		}
	}
	return nil
}

// GetHistory returns one page of a conversation's messages, newest first.
func (c *Client) GetHistory(ctx context.Context, peer domain.PeerID, count, offset int) ([]domain.VKMessage, error) {
	params := url.Values{}
	params.Set("peer_id", peer.String())
	params.Set("count", strconv.Itoa(count))
	params.Set("offset", strconv.Itoa(offset))

	var payload struct {
		Items []domain.VKMessage `json:"items"`
	}
	if err := c.call(ctx, "messages.getHistory", params, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// ResolveScreenName resolves a screen name to a user or community id.
// VK returns an empty payload for unknown names; that maps to (nil, nil).
func (c *Client) ResolveScreenName(ctx context.Context, name string) (*driven.Resolution, error) {
	params := url.Values{}
	params.Set("screen_name", name)

	// Unknown names come back as an empty array, not an object.
	var raw json.RawMessage
	if err := c.call(ctx, "utils.resolveScreenName", params, &raw); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "[]" || trimmed == "null" || trimmed == "false" {
		return nil, nil
	}

	var payload struct {
		Type     string `json:"type"`
		ObjectID int64  `json:"object_id"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("vk: utils.resolveScreenName: decode payload: %w", err)
	}
	if payload.Type == "" {
		return nil, nil
	}
	return &driven.Resolution{Kind: payload.Type, ObjectID: payload.ObjectID}, nil
}

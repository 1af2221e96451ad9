// Package session implements the Mojang session-server HasJoined check
// the login protocol uses to authenticate a player after the encryption
// handshake completes.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/riftmc/rift/internal/mcrypto"
)

// Property is a single signed profile property (most commonly "textures").
type Property struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Signature string `json:"signature,omitempty"`
}

// Identity is the authenticated player record decoded from Mojang's
// hasJoined response.
type Identity struct {
	UUID       string     `json:"id"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

// Client queries https://sessionserver.mojang.com for player
// authentication. It holds no credentials: the proxy only ever performs
// the server-side verification GET, never the client-side join POST.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client pointed at the production Mojang session
// server.
func NewClient() *Client {
	return &Client{
		baseURL:    "https://sessionserver.mojang.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithURL returns a Client pointed at a custom base URL, for
// testing against an httptest.Server.
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// HasJoined computes the server hash and asks Mojang whether username
// recently completed a join with it. A non-200 response, a network error,
// or an unparsable body are all surfaced as plain errors; the proxy
// collapses every one of them into the same AuthFailed disconnect.
func (c *Client) HasJoined(ctx context.Context, username, serverID string, sharedSecret, publicKeyDER []byte) (*Identity, error) {
	hash := mcrypto.ServerHash(serverID, sharedSecret, publicKeyDER)

	endpoint := fmt.Sprintf("%s/session/minecraft/hasJoined?username=%s&serverId=%s",
		c.baseURL, url.QueryEscape(username), url.QueryEscape(hash))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build hasJoined request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hasJoined request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hasJoined response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hasJoined rejected: status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("parse hasJoined response: %w", err)
	}

	return &identity, nil
}

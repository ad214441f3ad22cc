package gps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"service-courier-tracking/internal/apperr"
	"service-courier-tracking/internal/domain"
)

const (
	ajaxPath = "/wialon/ajax.html"

	svcTokenLogin = "token/login"
	svcSearchItem = "core/search_item"

	// loginFlags is the access level requested on token login.
	loginFlags = 1
	// itemFlags asks for base unit data plus the last known position.
	itemFlags = 1 | 1024

	bodyLimit = 1 << 20
)

// Client talks to the GPS provider over its JSON/AJAX API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a GPS provider client. A nil httpClient means a client
// with the given timeout (or http.DefaultClient when timeout is zero).
func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
		if timeout > 0 {
			httpClient = &http.Client{Timeout: timeout}
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type loginParams struct {
	Token string `json:"token"`
	Flags int    `json:"fl"`
}

type loginResponse struct {
	EID   string `json:"eid"`
	Error int    `json:"error"`
}

// Login exchanges an access token for a session key. Every failure, including
// a 200 response without a session id, is reported as apperr.ErrAuth.
func (c *Client) Login(ctx context.Context, token string) (domain.SessionKey, error) {
	var resp loginResponse
	if err := c.call(ctx, svcTokenLogin, "", loginParams{Token: token, Flags: loginFlags}, &resp); err != nil {
		return "", fmt.Errorf("gps: login: %w: %w", apperr.ErrAuth, err)
	}
	if resp.Error != 0 {
		return "", fmt.Errorf("gps: login: %w: provider error code %d", apperr.ErrAuth, resp.Error)
	}
	if strings.TrimSpace(resp.EID) == "" {
		return "", fmt.Errorf("gps: login: %w: no session id in response", apperr.ErrAuth)
	}
	return domain.SessionKey(resp.EID), nil
}

type searchItemParams struct {
	ID    int64 `json:"id"`
	Flags int   `json:"flags"`
}

type searchItemResponse struct {
	Item *struct {
		Pos *struct {
			X *float64 `json:"x"`
			Y *float64 `json:"y"`
		} `json:"pos"`
	} `json:"item"`
}

// LastPosition returns the last known position of a unit. Any response that
// lacks item.pos, including provider errors, is reported as apperr.ErrNotFound.
func (c *Client) LastPosition(ctx context.Context, sid domain.SessionKey, unitID int64) (domain.Position, error) {
	var resp searchItemResponse
	if err := c.call(ctx, svcSearchItem, string(sid), searchItemParams{ID: unitID, Flags: itemFlags}, &resp); err != nil {
		return domain.Position{}, fmt.Errorf("gps: search item %d: %w: %w", unitID, apperr.ErrNotFound, err)
	}
	if resp.Item == nil || resp.Item.Pos == nil || resp.Item.Pos.X == nil || resp.Item.Pos.Y == nil {
		return domain.Position{}, fmt.Errorf("gps: search item %d: %w: no position in response", unitID, apperr.ErrNotFound)
	}
	return domain.Position{X: *resp.Item.Pos.X, Y: *resp.Item.Pos.Y}, nil
}

func (c *Client) call(ctx context.Context, svc, sid string, params any, dst any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}

	form := url.Values{}
	form.Set("svc", svc)
	form.Set("params", string(raw))
	if sid != "" {
		form.Set("sid", sid)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ajaxPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, bodyLimit))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, bodyLimit)).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

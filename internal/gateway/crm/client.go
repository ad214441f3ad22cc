package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"service-courier-tracking/internal/apperr"
	"service-courier-tracking/internal/domain"
)

const (
	deliveryInfoPath = "/api/delivery-info"
	driverInfoPath   = "/api/driver-info"

	bodyLimit = 1 << 20
)

// Client resolves orders and couriers against the CRM.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a CRM client authenticating with a bearer token.
func NewClient(baseURL, token string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
		if timeout > 0 {
			httpClient = &http.Client{Timeout: timeout}
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

type deliveryInfoRequest struct {
	OrderID string `json:"order_id"`
}

type deliveryInfoResponse struct {
	CourierID       flexID   `json:"courier_id"`
	Branch          string   `json:"branch"`
	DestinationLat  *float64 `json:"destination_lat"`
	DestinationLong *float64 `json:"destination_long"`
	CourierStatus   string   `json:"courier_status"`
}

// DeliveryInfo resolves the courier, branch and destination of an order.
// The branch is returned normalized.
func (c *Client) DeliveryInfo(ctx context.Context, orderID string) (domain.DeliveryInfo, error) {
	var resp deliveryInfoResponse
	if err := c.post(ctx, deliveryInfoPath, deliveryInfoRequest{OrderID: orderID}, &resp); err != nil {
		return domain.DeliveryInfo{}, fmt.Errorf("crm: delivery info %q: %w: %w", orderID, apperr.ErrLookup, err)
	}

	courierID := strings.TrimSpace(string(resp.CourierID))
	switch {
	case courierID == "":
		return domain.DeliveryInfo{}, fmt.Errorf("crm: delivery info %q: %w: no courier assigned", orderID, apperr.ErrLookup)
	case resp.DestinationLat == nil || resp.DestinationLong == nil:
		return domain.DeliveryInfo{}, fmt.Errorf("crm: delivery info %q: %w: no destination", orderID, apperr.ErrLookup)
	}

	return domain.DeliveryInfo{
		CourierID:       courierID,
		Branch:          domain.NormalizeBranch(resp.Branch),
		DestinationLat:  *resp.DestinationLat,
		DestinationLong: *resp.DestinationLong,
		CourierStatus:   resp.CourierStatus,
	}, nil
}

type driverInfoRequest struct {
	CourierID string `json:"courier_id"`
}

type driverInfoResponse struct {
	UnitID json.Number `json:"unit_id"`
	Phone  string      `json:"phone"`
}

// DriverInfo resolves the tracking unit and phone of a courier.
func (c *Client) DriverInfo(ctx context.Context, courierID string) (domain.DriverInfo, error) {
	var resp driverInfoResponse
	if err := c.post(ctx, driverInfoPath, driverInfoRequest{CourierID: courierID}, &resp); err != nil {
		return domain.DriverInfo{}, fmt.Errorf("crm: driver info %q: %w: %w", courierID, apperr.ErrLookup, err)
	}

	unitID, err := resp.UnitID.Int64()
	if err != nil || unitID <= 0 {
		return domain.DriverInfo{}, fmt.Errorf("crm: driver info %q: %w: no tracking unit", courierID, apperr.ErrLookup)
	}

	return domain.DriverInfo{
		UnitID:       unitID,
		CourierPhone: strings.TrimSpace(resp.Phone),
	}, nil
}

// flexID accepts an identifier encoded either as a JSON string or number.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, dst any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, bodyLimit))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, bodyLimit))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

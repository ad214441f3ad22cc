package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"service-courier-tracking/internal/apperr"
	"service-courier-tracking/internal/logx"
)

// Outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

type counterVec interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}

// Receipt acknowledges an accepted callback.
type Receipt struct {
	ID         string
	EventID    string
	ReceivedAt time.Time
}

// Receiver validates and logs inbound callbacks. It keeps no state.
type Receiver struct {
	logger  logx.Logger
	outcome counterVec
	now     func() time.Time
	newID   func() string
}

// NewReceiver creates a Receiver. outcome may be nil.
func NewReceiver(logger logx.Logger, outcome counterVec) *Receiver {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Receiver{
		logger:  logger,
		outcome: outcome,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Receive accepts a JSON object carrying a non-empty "id".
// Malformed payloads are reported as apperr.ErrValidation.
func (r *Receiver) Receive(_ context.Context, body []byte) (Receipt, error) {
	eventID, fields, err := parse(body)
	if err != nil {
		r.count(OutcomeRejected)
		r.logger.Warn("webhook rejected", logx.Err(err), logx.Int("size", len(body)))
		return Receipt{}, err
	}

	rc := Receipt{
		ID:         r.newID(),
		EventID:    eventID,
		ReceivedAt: r.now(),
	}
	r.count(OutcomeAccepted)
	r.logger.Info("webhook received",
		logx.String("receipt_id", rc.ID),
		logx.String("event_id", rc.EventID),
		logx.Int("fields", fields),
		logx.Time("received_at", rc.ReceivedAt),
	)
	return rc, nil
}

func (r *Receiver) count(outcome string) {
	if r.outcome != nil {
		r.outcome.WithLabelValues(outcome).Inc()
	}
}

func parse(body []byte) (string, int, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return "", 0, fmt.Errorf("%w: invalid json: %w", apperr.ErrValidation, err)
	}
	if dec.More() {
		return "", 0, fmt.Errorf("%w: invalid json: trailing data", apperr.ErrValidation)
	}

	var id string
	switch v := payload["id"].(type) {
	case string:
		id = strings.TrimSpace(v)
	case json.Number:
		id = v.String()
	}
	if id == "" {
		return "", 0, fmt.Errorf("%w: missing id", apperr.ErrValidation)
	}
	return id, len(payload), nil
}

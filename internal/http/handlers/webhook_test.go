package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-courier-tracking/internal/service/webhook"
)

type stubReceiver struct {
	err error
}

func (s stubReceiver) Receive(_ context.Context, _ []byte) (webhook.Receipt, error) {
	if s.err != nil {
		return webhook.Receipt{}, s.err
	}
	return webhook.Receipt{ID: "rcpt-1"}, nil
}

func postWebhook(t *testing.T, uc webhookUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewWebhookHandler(uc, nil)
	rr := httptest.NewRecorder()
	h.Receive(rr, httptest.NewRequest(http.MethodPost, "/webhook/", strings.NewReader(body)))
	return rr
}

func TestWebhookHandler_Receive(t *testing.T) {
	t.Parallel()

	receiver := webhook.NewReceiver(nil, nil)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"with id", `{"id":"ORD123"}`, http.StatusOK},
		{"empty object", `{}`, http.StatusBadRequest},
		{"not json", `hello`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := postWebhook(t, NewWebhookUsecase(receiver), tc.body)
			require.Equal(t, tc.status, rr.Code)

			if tc.status == http.StatusOK {
				assert.Equal(t, webhookAck, rr.Body.String())
				assert.NotEmpty(t, rr.Header().Get("X-Receipt-ID"))
				return
			}
			var body errResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "Invalid webhook payload", body.Error)
		})
	}
}

func TestWebhookHandler_Receive_Unexpected(t *testing.T) {
	t.Parallel()

	rr := postWebhook(t, stubReceiver{err: errors.New("disk on fire")}, `{"id":"x"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "An unexpected error occurred")
}

func TestWebhookHandler_Receive_TooLarge(t *testing.T) {
	t.Parallel()

	big := `{"id":"` + strings.Repeat("a", bodyLimit) + `"}`
	rr := postWebhook(t, stubReceiver{}, big)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

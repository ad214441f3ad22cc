package handlers

import (
	"errors"
	"io"
	"net/http"

	"service-courier-tracking/internal/apperr"
	"service-courier-tracking/internal/logx"
)

const webhookAck = "Webhook received successfully"

// WebhookHandler accepts provider callbacks.
type WebhookHandler struct {
	uc     webhookUsecase
	logger logx.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(uc webhookUsecase, logger logx.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, logger: logger}
}

// Receive handles POST /webhook/.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(h.logger, w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(h.logger, w, r, http.StatusBadRequest, "unable to read request body")
		return
	}

	rc, err := h.uc.Receive(r.Context(), body)
	switch {
	case err == nil:
	case errors.Is(err, apperr.ErrValidation):
		writeError(h.logger, w, r, http.StatusBadRequest, "Invalid webhook payload")
		return
	default:
		loggerOrNop(h.logger).Error("webhook failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	w.Header().Set("X-Receipt-ID", rc.ID)
	writeText(w, http.StatusOK, webhookAck)
}

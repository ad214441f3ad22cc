package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"service-courier-tracking/internal/apperr"
	"service-courier-tracking/internal/logx"
)

// LocationHandler serves live courier positions.
type LocationHandler struct {
	uc     locationUsecase
	logger logx.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(uc locationUsecase, logger logx.Logger) *LocationHandler {
	return &LocationHandler{uc: uc, logger: logger}
}

// Get handles GET /api/aircraft/{orderID}/.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	loc, err := h.uc.Locate(r.Context(), orderID)
	if err != nil {
		h.writeLocateError(w, r, orderID, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toLocationResponse(loc))
}

func (h *LocationHandler) writeLocateError(w http.ResponseWriter, r *http.Request, orderID string, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeError(h.logger, w, r, http.StatusBadRequest, "order id is required")
	case errors.Is(err, apperr.ErrAuth):
		writeError(h.logger, w, r, http.StatusInternalServerError, "Login failed")
	case errors.Is(err, apperr.ErrLookup):
		writeError(h.logger, w, r, http.StatusInternalServerError, "Unit retrieval failed")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "Vehicle not found")
	default:
		loggerOrNop(h.logger).Error("locate failed",
			logx.String("req_id", reqID(r.Context())),
			logx.String("order_id", orderID),
			logx.Err(err),
		)
		writeError(h.logger, w, r, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

package handlers

import (
	"context"

	"service-courier-tracking/internal/domain"
	"service-courier-tracking/internal/service/tracking"
	"service-courier-tracking/internal/service/webhook"
)

type locationUsecase interface {
	Locate(ctx context.Context, orderID string) (domain.Location, error)
}

// NewLocationUsecase wires the tracking Service into a locationUsecase.
func NewLocationUsecase(svc *tracking.Service) locationUsecase {
	return svc
}

type webhookUsecase interface {
	Receive(ctx context.Context, body []byte) (webhook.Receipt, error)
}

// NewWebhookUsecase wires the webhook Receiver into a webhookUsecase.
func NewWebhookUsecase(r *webhook.Receiver) webhookUsecase {
	return r
}

//go:generate mockgen -source=contracts.go -destination=tracking_mocks_test.go -package=tracking_test

package tracking

import (
	"context"
	"time"

	"service-courier-tracking/internal/domain"
)

type gpsGateway interface {
	Login(ctx context.Context, token string) (domain.SessionKey, error)
	LastPosition(ctx context.Context, sid domain.SessionKey, unitID int64) (domain.Position, error)
}

type crmGateway interface {
	DeliveryInfo(ctx context.Context, orderID string) (domain.DeliveryInfo, error)
	DriverInfo(ctx context.Context, courierID string) (domain.DriverInfo, error)
}

type sessionCache interface {
	Get(orderID string) (domain.ResolutionRecord, bool)
	Put(orderID string, rec domain.ResolutionRecord, ttl time.Duration)
	Refresh(orderID string) (domain.ResolutionRecord, bool)
	IsExpired(rec domain.ResolutionRecord) bool
}

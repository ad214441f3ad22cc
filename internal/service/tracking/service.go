package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"service-courier-tracking/internal/apperr"
	"service-courier-tracking/internal/clock"
	"service-courier-tracking/internal/domain"
	"service-courier-tracking/internal/logx"
	"service-courier-tracking/internal/metrics"
)

type counterVec interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}

// Config holds workflow settings.
type Config struct {
	// GPSToken is exchanged for a session key on every resolution.
	GPSToken string
	// TTL is the sliding lifetime of a cached resolution.
	TTL time.Duration
	// IncludeCourierPhone adds the courier phone to the answer.
	IncludeCourierPhone bool
}

// Deps are the collaborators of the workflow. Lookups and Failures may be nil.
type Deps struct {
	GPS      gpsGateway
	CRM      crmGateway
	Cache    sessionCache
	Branches domain.BranchTable
	Logger   logx.Logger
	Clock    clock.Clock
	Lookups  counterVec
	Failures counterVec
}

// Service answers "where is the courier of order X right now".
type Service struct {
	gps      gpsGateway
	crm      crmGateway
	cache    sessionCache
	branches domain.BranchTable
	logger   logx.Logger
	clock    clock.Clock
	lookups  counterVec
	failures counterVec
	cfg      Config

	// leases collapses concurrent resolutions of the same order.
	leases singleflight.Group
}

// NewService creates the location workflow.
func NewService(d Deps, cfg Config) *Service {
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	if d.Clock == nil {
		d.Clock = clock.Real{}
	}
	return &Service{
		gps:      d.GPS,
		crm:      d.CRM,
		cache:    d.Cache,
		branches: d.Branches,
		logger:   d.Logger,
		clock:    d.Clock,
		lookups:  d.Lookups,
		failures: d.Failures,
		cfg:      cfg,
	}
}

// Locate returns the live position of the courier delivering orderID merged
// with the start and destination coordinates of the delivery.
//
// Errors wrap apperr.ErrAuth (login failed), apperr.ErrLookup (CRM could not
// resolve the unit) or apperr.ErrNotFound (no live position).
func (s *Service) Locate(ctx context.Context, orderID string) (domain.Location, error) {
	if strings.TrimSpace(orderID) == "" {
		return domain.Location{}, apperr.ErrValidation
	}
	log := s.logger.With(logx.String("order_id", orderID))

	rec, err := s.session(ctx, orderID, log)
	if err != nil {
		return domain.Location{}, err
	}

	start := s.branches.Start(rec.Branch)

	pos, err := s.gps.LastPosition(ctx, rec.SessionKey, rec.UnitID)
	if err != nil {
		s.fail("gps", "last_position")
		log.Warn("vehicle position unavailable", logx.Int64("unit_id", rec.UnitID), logx.Err(err))
		return domain.Location{}, classify(err, apperr.ErrNotFound)
	}

	s.cache.Refresh(orderID)

	loc := domain.Location{
		X:               pos.X,
		Y:               pos.Y,
		StartLat:        start.Lat,
		StartLong:       start.Long,
		DestinationLat:  rec.DestinationLat,
		DestinationLong: rec.DestinationLong,
	}
	if s.cfg.IncludeCourierPhone {
		loc.CourierPhone = rec.CourierPhone
	}
	return loc, nil
}

// session returns a usable resolution for orderID, resolving it when the
// cached one is absent or stale.
func (s *Service) session(ctx context.Context, orderID string, log logx.Logger) (domain.ResolutionRecord, error) {
	rec, ok := s.cache.Get(orderID)
	switch {
	case !ok:
		s.lookup(metrics.CacheMiss)
	case s.cache.IsExpired(rec):
		s.lookup(metrics.CacheStale)
	default:
		s.lookup(metrics.CacheHit)
		return rec, nil
	}

	// The lease outlives the caller that started it: followers must not see
	// the leader's cancellation. Upstream client timeouts bound the work.
	leaseCtx := context.WithoutCancel(ctx)
	ch := s.leases.DoChan(orderID, func() (any, error) {
		// another lease holder may have finished between Get and DoChan
		if rec, ok := s.cache.Get(orderID); ok && !s.cache.IsExpired(rec) {
			return rec, nil
		}
		return s.resolve(leaseCtx, orderID, log)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.ResolutionRecord{}, res.Err
		}
		if res.Shared {
			log.Debug("resolution shared with concurrent request")
		}
		return res.Val.(domain.ResolutionRecord), nil
	case <-ctx.Done():
		return domain.ResolutionRecord{}, fmt.Errorf("wait for resolution: %w", ctx.Err())
	}
}

func (s *Service) resolve(ctx context.Context, orderID string, log logx.Logger) (domain.ResolutionRecord, error) {
	sid, err := s.gps.Login(ctx, s.cfg.GPSToken)
	if err != nil {
		s.fail("gps", "login")
		log.Error("gps login failed", logx.Err(err))
		return domain.ResolutionRecord{}, classify(err, apperr.ErrAuth)
	}

	delivery, err := s.crm.DeliveryInfo(ctx, orderID)
	if err != nil {
		s.fail("crm", "delivery_info")
		log.Error("delivery info lookup failed", logx.Err(err))
		return domain.ResolutionRecord{}, classify(err, apperr.ErrLookup)
	}

	driver, err := s.crm.DriverInfo(ctx, delivery.CourierID)
	if err != nil {
		s.fail("crm", "driver_info")
		log.Error("driver info lookup failed", logx.String("courier_id", delivery.CourierID), logx.Err(err))
		return domain.ResolutionRecord{}, classify(err, apperr.ErrLookup)
	}

	rec := domain.ResolutionRecord{
		SessionKey:      sid,
		LastRequestTime: s.clock.Now(),
		CourierID:       delivery.CourierID,
		UnitID:          driver.UnitID,
		Branch:          domain.NormalizeBranch(delivery.Branch),
		DestinationLat:  delivery.DestinationLat,
		DestinationLong: delivery.DestinationLong,
		CourierStatus:   delivery.CourierStatus,
		CourierPhone:    driver.CourierPhone,
	}
	s.cache.Put(orderID, rec, s.cfg.TTL)

	log.Info("order resolved",
		logx.String("courier_id", rec.CourierID),
		logx.Int64("unit_id", rec.UnitID),
		logx.String("branch", rec.Branch),
		logx.String("courier_status", rec.CourierStatus),
	)
	return rec, nil
}

func (s *Service) lookup(result string) {
	if s.lookups != nil {
		s.lookups.WithLabelValues(result).Inc()
	}
}

func (s *Service) fail(upstream, op string) {
	if s.failures != nil {
		s.failures.WithLabelValues(upstream, op).Inc()
	}
}

// classify makes sure err is reported under kind.
func classify(err, kind error) error {
	if errors.Is(err, kind) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

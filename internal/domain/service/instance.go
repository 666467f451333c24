package service

import (
	"context"
	"sync"
	"time"

	"github.com/diegoclair/movie-club-bot/internal/domain"
	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/metrics"
	"github.com/jonboulle/clockwork"
)

// Options tune the rotation rules
type Options struct {
	PeriodDays      int
	EarlyAccessDays int
	ConfirmTimeout  time.Duration
}

func (o Options) withDefaults() Options {
	if o.PeriodDays <= 0 {
		o.PeriodDays = domain.DefaultRotationPeriodDays
	}
	if o.EarlyAccessDays < 0 {
		o.EarlyAccessDays = domain.DefaultEarlyAccessDays
	}
	if o.ConfirmTimeout <= 0 {
		o.ConfirmTimeout = domain.DefaultConfirmTimeout
	}
	return o
}

type Instance struct {
	Roster   contract.RosterService
	Rotation contract.RotationService
	Picks    contract.PickService
	Ratings  contract.RatingService
	Confirm  contract.Confirmer
}

// NewInstance wires every service over one data manager. All writers share
// a single lock so mutations are applied one at a time.
func NewInstance(dm contract.DataManager, catalog contract.Catalog, m *metrics.Metrics, clock clockwork.Clock, opts Options) *Instance {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	opts = opts.withDefaults()

	svc := &service{
		dm:       dm,
		clock:    clock,
		metrics:  m,
		writeMu:  &sync.Mutex{},
		resolver: newResolver(opts.PeriodDays),
		opts:     opts,
	}

	return &Instance{
		Roster:   newRoster(svc),
		Rotation: newRotation(svc),
		Picks:    newPicks(svc, catalog),
		Ratings:  newRatings(svc),
		Confirm:  newConfirmer(clock, opts.ConfirmTimeout),
	}
}

// service carries the dependencies every domain service needs
type service struct {
	dm       contract.DataManager
	clock    clockwork.Clock
	metrics  *metrics.Metrics
	writeMu  *sync.Mutex
	resolver *resolver
	opts     Options
}

// now is the naive wall-clock reading used for every rotation decision
func (s *service) now() time.Time {
	return domain.Naive(s.clock.Now())
}

// write runs fn in a transaction while holding the writer lock. fn must only
// touch the data manager it receives.
func (s *service) write(ctx context.Context, fn func(tx contract.DataManager) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.dm.WithTransaction(ctx, fn)
}

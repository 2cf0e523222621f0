package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flight-search/flight-finder/internal/domain"
	"github.com/flight-search/flight-finder/internal/infrastructure/kvstore"
	"github.com/flight-search/flight-finder/internal/infrastructure/logger"
)

// MaxRecentSearches is the number of searches kept per owner.
const MaxRecentSearches = 5

const recentKeyPrefix = "recent:"

// RecentSearches keeps each owner's latest distinct flight searches, newest first.
type RecentSearches interface {
	// Add records params as the owner's most recent search.
	Add(ctx context.Context, owner string, params domain.FlightSearchParams) error

	// List returns the owner's recent searches, newest first.
	List(ctx context.Context, owner string) ([]domain.FlightSearchParams, error)
}

// RecentConfig configures RecentSearches.
type RecentConfig struct {
	// Limit is the number of searches kept (default MaxRecentSearches)
	Limit int

	// TTL expires an owner's list after inactivity (0 keeps it forever)
	TTL time.Duration
}

type recentSearches struct {
	store kvstore.Store
	limit int
	ttl   time.Duration
	log   *logger.Logger
}

// NewRecentSearches creates a RecentSearches backed by store.
func NewRecentSearches(store kvstore.Store, cfg RecentConfig, log *logger.Logger) RecentSearches {
	if cfg.Limit <= 0 {
		cfg.Limit = MaxRecentSearches
	}
	if log == nil {
		log = logger.Nop()
	}
	return &recentSearches{
		store: store,
		limit: cfg.Limit,
		ttl:   cfg.TTL,
		log:   log.WithComponent("recent_searches"),
	}
}

func (r *recentSearches) Add(ctx context.Context, owner string, params domain.FlightSearchParams) error {
	if strings.TrimSpace(owner) == "" {
		return fmt.Errorf("%w: owner is required", domain.ErrInvalidRequest)
	}

	existing, err := r.List(ctx, owner)
	if err != nil {
		return err
	}

	updated := make([]domain.FlightSearchParams, 0, r.limit)
	updated = append(updated, params)
	for _, s := range existing {
		if len(updated) == r.limit {
			break
		}
		if !s.SameTrip(params) {
			updated = append(updated, s)
		}
	}

	if err := kvstore.SetJSON(ctx, r.store, recentKeyPrefix+owner, updated, r.ttl); err != nil {
		return fmt.Errorf("save recent searches: %w", err)
	}
	return nil
}

func (r *recentSearches) List(ctx context.Context, owner string) ([]domain.FlightSearchParams, error) {
	var searches []domain.FlightSearchParams
	err := kvstore.GetJSON(ctx, r.store, recentKeyPrefix+owner, &searches)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		return []domain.FlightSearchParams{}, nil
	case errors.Is(err, kvstore.ErrCorrupt):
		r.log.Warn().Err(err).Str("owner", owner).Msg("discarding unreadable recent searches")
		return []domain.FlightSearchParams{}, nil
	case err != nil:
		return nil, fmt.Errorf("load recent searches: %w", err)
	}

	if searches == nil {
		searches = []domain.FlightSearchParams{}
	}
	return searches, nil
}

var _ RecentSearches = (*recentSearches)(nil)

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/philly/showcase/backend/internal/platform/eventbus"
	"github.com/philly/showcase/backend/internal/platform/events"
	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/philly/showcase/backend/internal/platform/validator"
	"github.com/philly/showcase/backend/internal/showcase/domain"
	"github.com/philly/showcase/backend/internal/showcase/ports"
	"github.com/shopspring/decimal"
)

// Default stage timeouts
const (
	DefaultWarehouseTimeout = 3 * time.Second
	DefaultStorageTimeout   = 5 * time.Second
)

// Warehouse lookup outcomes reported to metrics
const (
	lookupFound       = "found"
	lookupNotFound    = "not_found"
	lookupUnavailable = "unavailable"
)

// Config tunes the showcase service. Zero values fall back to defaults.
type Config struct {
	WarehouseTimeout time.Duration
	StorageTimeout   time.Duration
	IDGenerator      func() string    // defaults to NewListingID
	Now              func() time.Time // defaults to time.Now
}

// NewListingID returns a time-ordered UUID (v7) as a string.
func NewListingID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}

// ShowcaseService implements the listing publish workflow and the query
// surface around it.
type ShowcaseService struct {
	repo     ports.ListingRepository
	resolver ports.ItemResolver
	metrics  ports.PublishMetrics
	eventBus *eventbus.Bus
	logger   logger.Logger
	cfg      Config
}

// NewShowcaseService creates a new showcase service
func NewShowcaseService(
	repo ports.ListingRepository,
	resolver ports.ItemResolver,
	metrics ports.PublishMetrics,
	eventBus *eventbus.Bus,
	logger logger.Logger,
	cfg Config,
) *ShowcaseService {
	if cfg.WarehouseTimeout <= 0 {
		cfg.WarehouseTimeout = DefaultWarehouseTimeout
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = DefaultStorageTimeout
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = NewListingID
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &ShowcaseService{
		repo:     repo,
		resolver: resolver,
		metrics:  metrics,
		eventBus: eventBus,
		logger:   logger,
		cfg:      cfg,
	}
}

// PublishParams contains the values of a publish request
type PublishParams struct {
	ID              string
	WarehouseItemID string
	Status          *string
	Price           *decimal.Decimal
	Currency        *string
	Meta            []byte
	OwnerLogin      string // empty skips the ownership check
}

// Publish validates the request, resolves the warehouse item, checks
// ownership and upserts the listing, stopping at the first failing stage.
// The returned listing is the row as stored.
func (s *ShowcaseService) Publish(ctx context.Context, params PublishParams) (*domain.Listing, error) {
	draft := domain.ListingDraft{
		ID:              params.ID,
		WarehouseItemID: strings.TrimSpace(params.WarehouseItemID),
		Status:          validator.NormalizeOptional(params.Status),
		Price:           params.Price,
		Currency:        validator.NormalizeOptional(params.Currency),
		Meta:            params.Meta,
	}
	ownerLogin := strings.TrimSpace(params.OwnerLogin)

	if err := draft.Validate(); err != nil {
		return nil, s.fail(ctx, err)
	}

	item, err := s.resolve(ctx, draft.WarehouseItemID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	// The caller may have gone away while the warehouse answered
	if err := ctx.Err(); err != nil {
		return nil, s.fail(ctx, fmt.Errorf("%w: %w", ports.ErrWarehouseUnavailable, err))
	}

	if domain.Authorize(*item, ownerLogin) == domain.Deny {
		s.logger.Warn(ctx, "ownership check denied publish",
			"warehouseItemID", item.ID,
			"ownerLogin", item.OwnerLogin,
			"callerLogin", ownerLogin,
		)
		return nil, s.fail(ctx, domain.ErrOwnershipDenied)
	}

	id := draft.ID
	if id == "" {
		id = s.cfg.IDGenerator()
	}
	listing, err := domain.NewListing(draft, id, s.cfg.Now())
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	stored, err := s.repo.Upsert(storeCtx, listing)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("%w: %w", ErrStorageFailure, err))
	}

	s.metrics.ObservePublish(string(CategorySuccess))
	s.logger.Info(ctx, "listing published",
		"listingID", stored.ID,
		"warehouseItemID", stored.WarehouseItemID,
		"created", stored.WasCreated(),
	)
	s.publishListingPublishedEvent(ctx, stored, ownerLogin)

	return stored, nil
}

// List returns every listing, newest first
func (s *ShowcaseService) List(ctx context.Context) ([]*domain.Listing, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	listings, err := s.repo.List(storeCtx)
	if err != nil {
		s.logger.Error(ctx, "failed to list listings", "error", err)
		_, appErr := Classify(fmt.Errorf("%w: %w", ErrStorageFailure, err))
		return nil, appErr
	}
	return listings, nil
}

// Get returns a single listing
func (s *ShowcaseService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	if err := validator.ValidateIdentifier(id, validator.MaxIdentifierLength); err != nil {
		return nil, ErrInvalidListingID.WithInner(err)
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	listing, err := s.repo.FindByID(storeCtx, id)
	if err != nil {
		if !errors.Is(err, ports.ErrListingNotFound) {
			s.logger.Error(ctx, "failed to get listing", "error", err, "listingID", id)
			err = fmt.Errorf("%w: %w", ErrStorageFailure, err)
		}
		_, appErr := Classify(err)
		return nil, appErr
	}
	return listing, nil
}

// Delete removes a listing. Deleting a listing that does not exist succeeds,
// including ids that could never have been stored.
func (s *ShowcaseService) Delete(ctx context.Context, id string) error {
	if err := validator.ValidateIdentifier(id, validator.MaxIdentifierLength); err != nil {
		s.logger.Debug(ctx, "delete of malformed listing id ignored", "listingID", id, "error", err)
		return nil
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	removed, err := s.repo.Delete(storeCtx, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete listing", "error", err, "listingID", id)
		_, appErr := Classify(fmt.Errorf("%w: %w", ErrStorageFailure, err))
		return appErr
	}

	s.logger.Info(ctx, "listing deleted", "listingID", id, "removed", removed)
	s.publishListingDeletedEvent(ctx, id, removed)
	return nil
}

// resolve runs the warehouse lookup under its own timeout. Anything other
// than "not found" is reported as the warehouse being unavailable.
func (s *ShowcaseService) resolve(ctx context.Context, warehouseItemID string) (*domain.ResolvedItem, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.WarehouseTimeout)
	defer cancel()

	started := time.Now()
	item, err := s.resolver.Resolve(lookupCtx, warehouseItemID)
	elapsed := time.Since(started)

	switch {
	case err == nil:
		s.metrics.ObserveWarehouseLookup(lookupFound, elapsed)
		return item, nil
	case errors.Is(err, ports.ErrItemNotFound):
		s.metrics.ObserveWarehouseLookup(lookupNotFound, elapsed)
		return nil, err
	case errors.Is(err, ports.ErrWarehouseUnavailable):
		s.metrics.ObserveWarehouseLookup(lookupUnavailable, elapsed)
		return nil, err
	default:
		s.metrics.ObserveWarehouseLookup(lookupUnavailable, elapsed)
		return nil, fmt.Errorf("%w: %w", ports.ErrWarehouseUnavailable, err)
	}
}

// fail classifies a publish failure, records it and logs the cause.
func (s *ShowcaseService) fail(ctx context.Context, err error) error {
	category, appErr := Classify(err)
	s.metrics.ObservePublish(string(category))

	switch category {
	case CategoryStorageFailure, CategoryUpstreamUnavailable, CategoryInternal:
		s.logger.Error(ctx, "publish failed", "category", category, "error", err)
	default:
		s.logger.Debug(ctx, "publish rejected", "category", category, "error", err)
	}
	return appErr
}

func (s *ShowcaseService) publishListingPublishedEvent(ctx context.Context, listing *domain.Listing, ownerLogin string) {
	event := eventbus.Event{
		Topic: events.ListingPublishedTopic,
		Payload: events.ListingPublishedEvent{
			ListingID:       listing.ID,
			WarehouseItemID: listing.WarehouseItemID,
			OwnerLogin:      ownerLogin,
			Created:         listing.WasCreated(),
			OccurredAt:      s.cfg.Now(),
		},
	}
	s.eventBus.Publish(ctx, event)
}

func (s *ShowcaseService) publishListingDeletedEvent(ctx context.Context, id string, removed bool) {
	event := eventbus.Event{
		Topic: events.ListingDeletedTopic,
		Payload: events.ListingDeletedEvent{
			ListingID:  id,
			Removed:    removed,
			OccurredAt: s.cfg.Now(),
		},
	}
	s.eventBus.Publish(ctx, event)
}

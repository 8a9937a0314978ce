package ports

import (
	"context"
	"errors"

	"github.com/philly/showcase/backend/internal/showcase/domain"
)

// Repository errors. The PostgreSQL implementation translates pgx.ErrNoRows
// to these.
var (
	// ErrListingNotFound is returned when no listing has the requested id
	ErrListingNotFound = errors.New("listing not found")
)

// ListingRepository defines the interface for listing persistence
type ListingRepository interface {
	// Upsert inserts the listing or replaces every mutable field of an
	// existing one with the same id. CreatedAt of an existing row is never
	// touched; UpdatedAt is set to listing.CreatedAt on replacement.
	// Returns the row as stored.
	Upsert(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)

	// FindByID retrieves a single listing
	FindByID(ctx context.Context, id string) (*domain.Listing, error)

	// List returns every listing, newest CreatedAt first
	List(ctx context.Context) ([]*domain.Listing, error)

	// Delete removes the listing and reports whether a row was removed.
	// A missing row is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}

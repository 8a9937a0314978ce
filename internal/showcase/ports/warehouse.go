package ports

import (
	"context"
	"errors"

	"github.com/philly/showcase/backend/internal/showcase/domain"
)

var (
	// ErrItemNotFound is returned when the warehouse reports that the item
	// does not exist
	ErrItemNotFound = errors.New("warehouse item not found")

	// ErrWarehouseUnavailable covers transport failures, timeouts and
	// unexpected warehouse responses
	ErrWarehouseUnavailable = errors.New("warehouse unavailable")
)

// ItemResolver looks up items in the warehouse service.
// Implementations make exactly one call per Resolve, never retry and have no
// side effects.
type ItemResolver interface {
	Resolve(ctx context.Context, warehouseItemID string) (*domain.ResolvedItem, error)
}

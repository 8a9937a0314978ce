package events

import (
	"time"

	"github.com/philly/showcase/backend/internal/platform/eventbus"
)

// Event topics for showcase listings
const (
	ListingPublishedTopic eventbus.Topic = "showcase.listing.published"
	ListingDeletedTopic   eventbus.Topic = "showcase.listing.deleted"
)

// ListingPublishedEvent is published after a listing upsert commits.
type ListingPublishedEvent struct {
	ListingID       string
	WarehouseItemID string
	OwnerLogin      string // Caller-supplied login, empty when the guard was bypassed
	Created         bool   // false when an existing listing was replaced
	OccurredAt      time.Time
}

// ListingDeletedEvent is published after a delete, whether or not a row
// was actually removed.
type ListingDeletedEvent struct {
	ListingID  string
	Removed    bool
	OccurredAt time.Time
}

package application

import (
	"context"

	"github.com/philly/showcase/backend/internal/platform/eventbus"
	"github.com/philly/showcase/backend/internal/platform/events"
	"github.com/philly/showcase/backend/internal/platform/logger"
)

// AuditLog writes one structured line per listing lifecycle event.
type AuditLog struct {
	logger logger.Logger
}

// NewAuditLog creates the audit subscriber and registers it on the bus
func NewAuditLog(bus *eventbus.Bus, logger logger.Logger) *AuditLog {
	a := &AuditLog{logger: logger}
	bus.Subscribe(events.ListingPublishedTopic, a.onPublished)
	bus.Subscribe(events.ListingDeletedTopic, a.onDeleted)
	return a
}

func (a *AuditLog) onPublished(ctx context.Context, event eventbus.Event) error {
	payload, ok := event.Payload.(events.ListingPublishedEvent)
	if !ok {
		a.logger.Warn(ctx, "unexpected audit payload", "topic", event.Topic)
		return nil
	}

	action := "replaced"
	if payload.Created {
		action = "created"
	}
	a.logger.Info(ctx, "audit: listing "+action,
		"listingID", payload.ListingID,
		"warehouseItemID", payload.WarehouseItemID,
		"ownerLogin", payload.OwnerLogin,
		"ownershipChecked", payload.OwnerLogin != "",
		"occurredAt", payload.OccurredAt,
	)
	return nil
}

func (a *AuditLog) onDeleted(ctx context.Context, event eventbus.Event) error {
	payload, ok := event.Payload.(events.ListingDeletedEvent)
	if !ok {
		a.logger.Warn(ctx, "unexpected audit payload", "topic", event.Topic)
		return nil
	}

	a.logger.Info(ctx, "audit: listing deleted",
		"listingID", payload.ListingID,
		"removed", payload.Removed,
		"occurredAt", payload.OccurredAt,
	)
	return nil
}

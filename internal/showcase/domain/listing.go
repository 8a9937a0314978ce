package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/philly/showcase/backend/internal/platform/validator"
	"github.com/shopspring/decimal"
)

// Listing is a showcase record referencing an item owned by the warehouse
// service. The reference is checked once, when the listing is published, and
// may dangle afterwards if the warehouse deletes the item.
type Listing struct {
	ID              string
	WarehouseItemID string
	Status          *string
	Price           *decimal.Decimal
	Currency        *string
	Meta            json.RawMessage // Opaque document, nil when absent
	CreatedAt       time.Time
	UpdatedAt       *time.Time // nil until the listing is replaced for the first time
}

// Validation errors
var (
	ErrMissingWarehouseItemID = errors.New("warehouseItemId is required")
	ErrInvalidWarehouseItemID = errors.New("warehouseItemId is malformed")
	ErrInvalidListingID       = errors.New("listing id is malformed")
	ErrInvalidMeta            = errors.New("meta must be a valid JSON document")
)

// ListingDraft carries the caller-supplied values of a publish request.
// Every optional field that is nil is stored as null; nothing is merged with
// a previously stored listing.
type ListingDraft struct {
	ID              string // empty means "generate one"
	WarehouseItemID string
	Status          *string
	Price           *decimal.Decimal
	Currency        *string
	Meta            json.RawMessage
}

// Validate checks the draft without touching any collaborator.
func (d ListingDraft) Validate() error {
	if d.WarehouseItemID == "" {
		return ErrMissingWarehouseItemID
	}
	if err := validator.ValidateIdentifier(d.WarehouseItemID, validator.MaxIdentifierLength); err != nil {
		return errors.Join(ErrInvalidWarehouseItemID, err)
	}
	if d.ID != "" {
		if err := validator.ValidateIdentifier(d.ID, validator.MaxIdentifierLength); err != nil {
			return errors.Join(ErrInvalidListingID, err)
		}
	}
	if len(d.Meta) > 0 && !json.Valid(d.Meta) {
		return ErrInvalidMeta
	}
	return nil
}

// NewListing turns a validated draft into the listing that will be written.
// id is used when the draft carries none; now becomes CreatedAt, which the
// store keeps only if the row does not exist yet.
func NewListing(draft ListingDraft, id string, now time.Time) (*Listing, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if draft.ID != "" {
		id = draft.ID
	}
	if err := validator.ValidateIdentifier(id, validator.MaxIdentifierLength); err != nil {
		return nil, errors.Join(ErrInvalidListingID, err)
	}

	return &Listing{
		ID:              id,
		WarehouseItemID: draft.WarehouseItemID,
		Status:          draft.Status,
		Price:           draft.Price,
		Currency:        draft.Currency,
		Meta:            normalizeMeta(draft.Meta),
		CreatedAt:       now.UTC(),
	}, nil
}

// WasCreated reports whether the stored listing came from an insert rather
// than a replacement.
func (l *Listing) WasCreated() bool {
	return l.UpdatedAt == nil
}

func normalizeMeta(meta json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(meta)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/philly/showcase/backend/internal/platform/postgres"
	"github.com/philly/showcase/backend/internal/showcase/domain"
	"github.com/philly/showcase/backend/internal/showcase/ports"
	"github.com/shopspring/decimal"
)

const listingsTable = "showcase_items"

var listingColumns = []string{
	"id", "warehouse_item_id", "status", "price",
	"currency", "meta", "created_at", "updated_at",
}

// upsertSuffix replaces every mutable column of an existing row. created_at
// is left alone and the new write time lands in updated_at.
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
	warehouse_item_id = EXCLUDED.warehouse_item_id,
	status = EXCLUDED.status,
	price = EXCLUDED.price,
	currency = EXCLUDED.currency,
	meta = EXCLUDED.meta,
	updated_at = EXCLUDED.created_at
RETURNING id, warehouse_item_id, status, price, currency, meta, created_at, updated_at`

// ListingRepository implements ports.ListingRepository using PostgreSQL
type ListingRepository struct {
	postgres.BaseRepository
}

// NewListingRepository creates a new PostgreSQL listing repository
func NewListingRepository(db postgres.Querier) *ListingRepository {
	return &ListingRepository{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

// Upsert inserts or replaces a listing in a single statement and returns the
// row as stored
func (r *ListingRepository) Upsert(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	query, args, err := r.SB.
		Insert(listingsTable).
		Columns(
			"id", "warehouse_item_id", "status", "price",
			"currency", "meta", "created_at",
		).
		Values(
			listing.ID,
			listing.WarehouseItemID,
			textArg(listing.Status),
			priceArg(listing.Price),
			textArg(listing.Currency),
			metaArg(listing.Meta),
			pgtype.Timestamptz{Time: listing.CreatedAt, Valid: true},
		).
		Suffix(upsertSuffix).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("ListingRepository.Upsert: build query: %w", err)
	}

	stored, err := scanListing(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.Upsert: %w", err)
	}

	return stored, nil
}

// FindByID retrieves a listing by its ID
func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	query, args, err := r.SB.
		Select(listingColumns...).
		From(listingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("ListingRepository.FindByID: build query: %w", err)
	}

	listing, err := scanListing(r.DB.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrListingNotFound
		}
		return nil, fmt.Errorf("ListingRepository.FindByID: %w", err)
	}

	return listing, nil
}

// List retrieves every listing, newest first. Ties on created_at are broken
// by id so the order is stable between calls.
func (r *ListingRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	query, args, err := r.SB.
		Select(listingColumns...).
		From(listingsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("ListingRepository.List: build query: %w", err)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.List: %w", err)
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("ListingRepository.List: scan: %w", err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListingRepository.List: rows: %w", err)
	}

	return listings, nil
}

// Delete removes a listing. It reports whether a row existed.
func (r *ListingRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := r.SB.
		Delete(listingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("ListingRepository.Delete: build query: %w", err)
	}

	result, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("ListingRepository.Delete: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		listing   domain.Listing
		status    pgtype.Text
		currency  pgtype.Text
		price     decimal.NullDecimal
		meta      []byte
		updatedAt *time.Time
	)

	err := row.Scan(
		&listing.ID,
		&listing.WarehouseItemID,
		&status,
		&price,
		&currency,
		&meta,
		&listing.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	listing.Status = textValue(status)
	listing.Currency = textValue(currency)
	if price.Valid {
		p := price.Decimal
		listing.Price = &p
	}
	if len(meta) > 0 {
		listing.Meta = json.RawMessage(meta)
	}
	listing.CreatedAt = listing.CreatedAt.UTC()
	if updatedAt != nil {
		t := updatedAt.UTC()
		listing.UpdatedAt = &t
	}

	return &listing, nil
}

func textArg(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func textValue(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func priceArg(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}

// metaArg hands pgx a nil interface for absent documents so jsonb gets NULL
// rather than the JSON literal null.
func metaArg(meta json.RawMessage) any {
	if len(meta) == 0 {
		return nil
	}
	return []byte(meta)
}

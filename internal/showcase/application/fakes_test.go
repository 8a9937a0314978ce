package application_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/philly/showcase/backend/internal/showcase/domain"
	"github.com/philly/showcase/backend/internal/showcase/ports"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any) {}

// memoryRepository mimics the upsert semantics of the SQL store
type memoryRepository struct {
	mu       sync.Mutex
	rows     map[string]domain.Listing
	writes   int
	deletes  int
	upsertFn func(ctx context.Context) error // optional failure hook
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: make(map[string]domain.Listing)}
}

func (r *memoryRepository) Upsert(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if r.upsertFn != nil {
		if err := r.upsertFn(ctx); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++

	row := *listing
	if existing, ok := r.rows[listing.ID]; ok {
		updatedAt := listing.CreatedAt
		row.CreatedAt = existing.CreatedAt
		row.UpdatedAt = &updatedAt
	}
	r.rows[row.ID] = row

	stored := row
	return &stored, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, ports.ErrListingNotFound
	}
	return &row, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*domain.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domain.Listing, 0, len(r.rows))
	for _, row := range r.rows {
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	_, ok := r.rows[id]
	delete(r.rows, id)
	return ok, nil
}

func (r *memoryRepository) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

func (r *memoryRepository) deleteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deletes
}

// stubResolver answers every lookup with the configured item or error
type stubResolver struct {
	mu    sync.Mutex
	items map[string]domain.ResolvedItem
	err   error
	block bool // wait for ctx to be done before answering
	calls int
}

func (s *stubResolver) Resolve(ctx context.Context, id string) (*domain.ResolvedItem, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.items[id]
	if !ok {
		return nil, ports.ErrItemNotFound
	}
	return &item, nil
}

// recordingMetrics keeps every observation
type recordingMetrics struct {
	mu      sync.Mutex
	publish []string
	lookups []string
}

func (m *recordingMetrics) ObservePublish(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publish = append(m.publish, category)
}

func (m *recordingMetrics) ObserveWarehouseLookup(outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups = append(m.lookups, outcome)
}

// stepClock advances by one second on every call
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

var errBoom = errors.New("boom")

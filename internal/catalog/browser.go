// Package catalog pages through the exercise catalog.
package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/misterclayt0n/keima/internal/api"
	"github.com/misterclayt0n/keima/internal/models"
)

const DefaultPageSize = 20

var ErrNoMorePages = errors.New("no more exercises to load")

// Source is the catalog backend.
type Source interface {
	Exercises(ctx context.Context, q api.ExerciseQuery) (*models.ExercisePage, error)
	Exercise(ctx context.Context, id string) (*models.Exercise, error)
	ExerciseStats(ctx context.Context) (*models.ExerciseStats, error)
}

type Filter struct {
	Search    string
	Level     string
	Equipment string
}

// Browser accumulates catalog pages for one filter. Changing the filter
// starts a new accumulation; pages within a filter are only appended.
type Browser struct {
	src   Source
	limit int

	mu         sync.Mutex
	filter     Filter
	offset     int
	loaded     bool
	hasMore    bool
	total      int
	generation int
	exercises  []models.Exercise
}

func NewBrowser(src Source, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{src: src, limit: pageSize}
}

// SetFilter replaces the filter. It reports whether anything changed; when it
// did the accumulated exercises are dropped.
func (b *Browser) SetFilter(f Filter) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if f == b.filter {
		return false
	}
	b.filter = f
	b.reset()
	return true
}

func (b *Browser) Filter() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

func (b *Browser) reset() {
	b.offset = 0
	b.loaded = false
	b.hasMore = false
	b.total = 0
	b.exercises = nil
	b.generation++
}

// Load fetches the first page for the current filter, replacing anything
// accumulated.
func (b *Browser) Load(ctx context.Context) ([]models.Exercise, error) {
	b.mu.Lock()
	b.reset()
	q, gen := b.query(0), b.generation
	b.mu.Unlock()

	return b.fetch(ctx, q, gen)
}

// LoadMore fetches the next page and appends it.
func (b *Browser) LoadMore(ctx context.Context) ([]models.Exercise, error) {
	b.mu.Lock()
	if !b.loaded {
		b.mu.Unlock()
		return b.Load(ctx)
	}
	if !b.hasMore {
		b.mu.Unlock()
		return nil, ErrNoMorePages
	}
	q, gen := b.query(b.offset+b.limit), b.generation
	b.mu.Unlock()

	return b.fetch(ctx, q, gen)
}

func (b *Browser) query(offset int) api.ExerciseQuery {
	return api.ExerciseQuery{
		Search:    b.filter.Search,
		Level:     b.filter.Level,
		Equipment: b.filter.Equipment,
		Limit:     b.limit,
		Offset:    offset,
	}
}

// fetch returns the page it fetched. The page is only applied if the filter
// did not change while the request was in flight.
func (b *Browser) fetch(ctx context.Context, q api.ExerciseQuery, gen int) ([]models.Exercise, error) {
	page, err := b.src.Exercises(ctx, q)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		return page.Exercises, nil
	}
	b.offset = q.Offset
	b.loaded = true
	b.total = page.Total
	b.hasMore = page.HasMore
	b.exercises = append(b.exercises, page.Exercises...)
	return page.Exercises, nil
}

// Exercises returns everything accumulated for the current filter.
func (b *Browser) Exercises() []models.Exercise {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Exercise, len(b.exercises))
	copy(out, b.exercises)
	return out
}

func (b *Browser) HasMore() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hasMore
}

func (b *Browser) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

func (b *Browser) Detail(ctx context.Context, id string) (*models.Exercise, error) {
	return b.src.Exercise(ctx, id)
}

func (b *Browser) Stats(ctx context.Context) (*models.ExerciseStats, error) {
	return b.src.ExerciseStats(ctx)
}

// Package store implements the view-model layer of the admin console: one
// store per entity holding a cached list, its filter/pagination state and the
// mutation operations that reconcile the cache with server responses.
//
// A store instance is owned by one screen. Two instances over the same entity
// keep independent caches with no cross-instance invalidation; a mutation in
// one becomes visible to the other at its next fetch.
package store

import (
	"context"
	"sync"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/logging"
)

// CreatePolicy selects how a store reconciles its cache after a successful
// create.
type CreatePolicy int

const (
	// CreatePrepend inserts the server's returned item at the head of the
	// cached list. Responsive, but only safe when client-side placement
	// cannot contradict server-side ordering.
	CreatePrepend CreatePolicy = iota

	// CreateRefetch reloads the current page after a create. Used where the
	// server computes ordering or defaults the client cannot synthesize
	// (pages, banners).
	CreateRefetch
)

const DefaultPageSize = 20

// Pagination mirrors the list endpoint's paging state. TotalPages is derived
// as ceil(Count/PageSize).
type Pagination struct {
	Count       int64
	CurrentPage int
	PageSize    int
	TotalPages  int
}

func totalPages(count int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}

// Config wires a Resource to its entity's list endpoint.
type Config[T any, F any] struct {
	// List performs one list call for the given filter/page/size tuple.
	List func(ctx context.Context, f F, page, pageSize int) (*api.Page[T], error)

	// ID extracts the identity used to match items on update and delete.
	ID func(T) int64

	CreatePolicy CreatePolicy

	// Logger is optional; fetch failures are logged when it is set.
	Logger logging.Logger
}

// Resource is the generic core of every entity store. Typed stores embed it
// and add payload-specific Create/Update/Delete methods on top of the
// unexported reconciliation helpers.
type Resource[T any, F any] struct {
	mu      sync.Mutex
	cfg     Config[T, F]
	items   []T
	loading bool
	err     string
	filters F
	pg      Pagination

	// gen identifies the most recent Fetch; responses carrying an older
	// generation are discarded so a slow request superseded by a filter
	// change can never overwrite fresher state.
	gen uint64
}

func NewResource[T any, F any](cfg Config[T, F]) *Resource[T, F] {
	return &Resource[T, F]{
		cfg: cfg,
		pg:  Pagination{CurrentPage: 1, PageSize: DefaultPageSize},
	}
}

// Fetch issues exactly one list call for the current filter/page/size tuple.
// On success the cached items are replaced and pagination recomputed; on
// failure the error is stored for display and the cache cleared. The returned
// error mirrors the stored one so callers may retry explicitly.
func (r *Resource[T, F]) Fetch(ctx context.Context) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	f := r.filters
	page, size := r.pg.CurrentPage, r.pg.PageSize
	r.loading = true
	r.mu.Unlock()

	res, err := r.cfg.List(ctx, f, page, size)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		// superseded by a newer Fetch; its result owns the state now
		return nil
	}
	r.loading = false

	if err != nil {
		if r.cfg.Logger != nil {
			r.cfg.Logger.Error(ctx, "list fetch failed", "error", err)
		}
		r.items = nil
		r.err = err.Error()
		return err
	}

	r.err = ""
	r.items = res.Results
	r.pg.Count = res.Count
	r.pg.TotalPages = totalPages(res.Count, r.pg.PageSize)
	return nil
}

// Items returns a copy of the cached list.
func (r *Resource[T, F]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Resource[T, F]) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Err returns the display form of the last list failure, "" when the last
// fetch succeeded.
func (r *Resource[T, F]) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Resource[T, F]) Filters() F {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filters
}

func (r *Resource[T, F]) Page() Pagination {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pg
}

// SetPage moves to page p without touching anything else.
func (r *Resource[T, F]) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pg.CurrentPage = p
}

// SetPageSize changes the page size, resets to page 1 and recomputes
// TotalPages from the previous count. That estimate is stale until the
// next fetch completes.
func (r *Resource[T, F]) SetPageSize(n int) {
	if n < 1 {
		n = DefaultPageSize
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pg.PageSize = n
	r.pg.CurrentPage = 1
	r.pg.TotalPages = totalPages(r.pg.Count, n)
}

// UpdateFilters applies mut to the filter state and resets to page 1.
func (r *Resource[T, F]) UpdateFilters(mut func(*F)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mut(&r.filters)
	r.pg.CurrentPage = 1
}

// createItem runs the mutation and reconciles the cache per the store's
// create policy. A failed call leaves the cache untouched and returns the
// error to the invoking form.
func (r *Resource[T, F]) createItem(ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	item, err := call(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if r.cfg.CreatePolicy == CreateRefetch {
		// the item was created; a list failure here is already surfaced
		// through the store's error state
		_ = r.Fetch(ctx)
		return item, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]T{item}, r.items...)
	r.pg.Count++
	r.pg.TotalPages = totalPages(r.pg.Count, r.pg.PageSize)
	return item, nil
}

// replaceItem runs the mutation and swaps the matching item in place by id.
func (r *Resource[T, F]) replaceItem(ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	item, err := call(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	id := r.cfg.ID(item)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.cfg.ID(r.items[i]) == id {
			r.items[i] = item
			break
		}
	}
	return item, nil
}

// removeItem runs the deletion and drops the matching item from the cache.
func (r *Resource[T, F]) removeItem(ctx context.Context, id int64, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if r.cfg.ID(it) != id {
			kept = append(kept, it)
		}
	}
	if len(kept) < len(r.items) {
		r.items = kept
		if r.pg.Count > 0 {
			r.pg.Count--
		}
		r.pg.TotalPages = totalPages(r.pg.Count, r.pg.PageSize)
	}
	return nil
}

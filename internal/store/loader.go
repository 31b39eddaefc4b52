package store

import (
	"context"
	"sync"
)

// Loader caches a single read-only value (dashboard, balances). It keeps the
// same loading/error pair as Resource but has no mutations or pagination.
type Loader[T any] struct {
	mu      sync.Mutex
	fetch   func(context.Context) (T, error)
	value   T
	loaded  bool
	loading bool
	err     string
}

func NewLoader[T any](fetch func(context.Context) (T, error)) *Loader[T] {
	return &Loader[T]{fetch: fetch}
}

// Load fetches the value. On failure the previous value is kept and the
// error recorded for display.
func (l *Loader[T]) Load(ctx context.Context) (T, error) {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	v, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.err = err.Error()
		return l.value, err
	}
	l.err = ""
	l.value = v
	l.loaded = true
	return v, nil
}

// Value returns the cached value and whether a load has succeeded yet.
func (l *Loader[T]) Value() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.loaded
}

func (l *Loader[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *Loader[T]) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
)

func cityID(c models.City) int64 { return c.ID }

// fakeList serves canned pages and records every call's tuple.
type fakeList struct {
	mu    sync.Mutex
	calls []listCall
	page  *api.Page[models.City]
	err   error
}

type listCall struct {
	filters  CityFilters
	page     int
	pageSize int
}

func (f *fakeList) fn(ctx context.Context, flt CityFilters, page, size int) (*api.Page[models.City], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, listCall{filters: flt, page: page, pageSize: size})
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeList) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeList) lastCall() listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func pageOf(count int64, cities ...models.City) *api.Page[models.City] {
	return &api.Page[models.City]{Count: count, Results: cities}
}

func newCityResource(list *fakeList, policy CreatePolicy) *Resource[models.City, CityFilters] {
	return NewResource(Config[models.City, CityFilters]{
		List:         list.fn,
		ID:           cityID,
		CreatePolicy: policy,
	})
}

func TestFetch_SuccessReplacesItemsAndPagination(t *testing.T) {
	list := &fakeList{page: pageOf(42, models.City{ID: 1, Name: "Tashkent"}, models.City{ID: 2, Name: "Samarkand"})}
	r := newCityResource(list, CreatePrepend)

	require.NoError(t, r.Fetch(context.Background()))

	assert.Len(t, r.Items(), 2)
	assert.False(t, r.Loading())
	assert.Empty(t, r.Err())

	pg := r.Page()
	assert.Equal(t, int64(42), pg.Count)
	assert.Equal(t, 1, pg.CurrentPage)
	assert.Equal(t, DefaultPageSize, pg.PageSize)
	assert.Equal(t, 3, pg.TotalPages) // ceil(42/20)
}

func TestFetch_FailureSetsErrorAndClearsItems(t *testing.T) {
	list := &fakeList{page: pageOf(1, models.City{ID: 1, Name: "Tashkent"})}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))
	require.Len(t, r.Items(), 1)

	list.mu.Lock()
	list.err = &api.RequestError{Op: "fetch cities", StatusCode: 500}
	list.mu.Unlock()

	err := r.Fetch(context.Background())
	require.Error(t, err)
	assert.Empty(t, r.Items())
	assert.Equal(t, err.Error(), r.Err())
}

func TestFetch_EmptyBackend(t *testing.T) {
	list := &fakeList{page: pageOf(0)}
	r := newCityResource(list, CreatePrepend)

	require.NoError(t, r.Fetch(context.Background()))

	assert.NotNil(t, r.Items())
	assert.Empty(t, r.Items())
	assert.Empty(t, r.Err())
	assert.False(t, r.Loading())

	pg := r.Page()
	assert.Equal(t, int64(0), pg.Count)
	assert.Equal(t, 0, pg.TotalPages) // the view reports "0 of 0"
}

func TestPageResets(t *testing.T) {
	list := &fakeList{page: pageOf(100)}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))

	// an explicit page change keeps its page
	r.SetPage(3)
	assert.Equal(t, 3, r.Page().CurrentPage)

	// a filter change resets to page 1
	r.UpdateFilters(func(f *CityFilters) { f.Search = "x" })
	assert.Equal(t, 1, r.Page().CurrentPage)

	// a page-size change resets to page 1 too
	r.SetPage(3)
	r.SetPageSize(50)
	pg := r.Page()
	assert.Equal(t, 1, pg.CurrentPage)
	assert.Equal(t, 50, pg.PageSize)
	// total pages re-estimated from the previous count until the next fetch
	assert.Equal(t, 2, pg.TotalPages)
}

func TestSetPageSize_NextFetchUsesNewTuple(t *testing.T) {
	list := &fakeList{page: pageOf(60)}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))
	r.SetPage(3)

	r.SetPageSize(50)
	require.NoError(t, r.Fetch(context.Background()))

	assert.Equal(t, 2, list.callCount())
	last := list.lastCall()
	assert.Equal(t, 1, last.page)
	assert.Equal(t, 50, last.pageSize)
}

func TestUpdateFilters_RoundTrip(t *testing.T) {
	list := &fakeList{page: pageOf(0)}
	r := newCityResource(list, CreatePrepend)

	before := r.Filters()
	r.UpdateFilters(func(f *CityFilters) { f.Search = "x" })
	assert.Equal(t, "x", r.Filters().Search)

	r.UpdateFilters(func(f *CityFilters) { f.Search = "" })
	assert.Equal(t, before, r.Filters())
}

func TestCreate_PrependThenRefetchShowsItemOnce(t *testing.T) {
	list := &fakeList{page: pageOf(1, models.City{ID: 1, Name: "Tashkent"})}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))

	created := models.City{ID: 2, Name: "Bukhara"}
	item, err := r.createItem(context.Background(), func(context.Context) (models.City, error) {
		return created, nil
	})
	require.NoError(t, err)
	assert.Equal(t, created, item)

	// prepended eagerly
	items := r.Items()
	require.Len(t, items, 2)
	assert.Equal(t, created, items[0])
	assert.Equal(t, int64(2), r.Page().Count)

	// the next fetch reflects the server list; the item appears exactly once
	list.mu.Lock()
	list.page = pageOf(2, models.City{ID: 1, Name: "Tashkent"}, created)
	list.mu.Unlock()
	require.NoError(t, r.Fetch(context.Background()))

	seen := 0
	for _, it := range r.Items() {
		if it.ID == created.ID {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestCreate_RefetchPolicyReloadsList(t *testing.T) {
	list := &fakeList{page: pageOf(1, models.City{ID: 1, Name: "Tashkent"})}
	r := newCityResource(list, CreateRefetch)
	require.NoError(t, r.Fetch(context.Background()))

	created := models.City{ID: 2, Name: "Bukhara"}
	list.mu.Lock()
	list.page = pageOf(2, created, models.City{ID: 1, Name: "Tashkent"})
	list.mu.Unlock()

	_, err := r.createItem(context.Background(), func(context.Context) (models.City, error) {
		return created, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, list.callCount())
	items := r.Items()
	require.Len(t, items, 2)
	seen := 0
	for _, it := range items {
		if it.ID == created.ID {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestCreate_FailureLeavesItemsUntouched(t *testing.T) {
	list := &fakeList{page: pageOf(1, models.City{ID: 1, Name: "Tashkent"})}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))
	before := r.Items()

	_, err := r.createItem(context.Background(), func(context.Context) (models.City, error) {
		return models.City{}, &api.RequestError{Op: "create city", StatusCode: 400, Message: "name is required"}
	})
	require.Error(t, err)
	assert.Equal(t, before, r.Items())
	assert.Equal(t, int64(1), r.Page().Count)
}

func TestReplaceItem_SwapsMatchingIDOnly(t *testing.T) {
	list := &fakeList{page: pageOf(2, models.City{ID: 1, Name: "Tashkent"}, models.City{ID: 2, Name: "Bukhara"})}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))

	renamed := models.City{ID: 2, Name: "Bukhoro"}
	_, err := r.replaceItem(context.Background(), func(context.Context) (models.City, error) {
		return renamed, nil
	})
	require.NoError(t, err)

	items := r.Items()
	assert.Equal(t, "Tashkent", items[0].Name)
	assert.Equal(t, "Bukhoro", items[1].Name)
}

func TestRemoveItem_RemovesExactlyThatID(t *testing.T) {
	list := &fakeList{page: pageOf(3,
		models.City{ID: 1, Name: "Tashkent"},
		models.City{ID: 2, Name: "Bukhara"},
		models.City{ID: 3, Name: "Khiva"},
	)}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))

	err := r.removeItem(context.Background(), 2, func(context.Context) error { return nil })
	require.NoError(t, err)

	items := r.Items()
	require.Len(t, items, 2)
	for _, it := range items {
		assert.NotEqual(t, int64(2), it.ID)
	}
	assert.Equal(t, int64(2), r.Page().Count)
}

func TestRemoveItem_ServerRejectionKeepsItemAndMessage(t *testing.T) {
	list := &fakeList{page: pageOf(1, models.City{ID: 1, Name: "Tashkent"})}
	r := newCityResource(list, CreatePrepend)
	require.NoError(t, r.Fetch(context.Background()))

	reject := &api.RequestError{Op: "delete city", StatusCode: 409, Message: "city has districts attached"}
	err := r.removeItem(context.Background(), 1, func(context.Context) error { return reject })

	require.Error(t, err)
	// the server's message reaches the caller unchanged
	assert.Equal(t, "city has districts attached", err.Error())
	assert.ErrorIs(t, err, api.ErrConflict)
	assert.Len(t, r.Items(), 1)
	assert.Equal(t, int64(1), r.Page().Count)
}

func TestFetch_StaleResponseDiscarded(t *testing.T) {
	block := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	r := NewResource(Config[models.City, CityFilters]{
		List: func(ctx context.Context, f CityFilters, page, size int) (*api.Page[models.City], error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				<-block
				return pageOf(1, models.City{ID: 1, Name: "stale"}), nil
			}
			return pageOf(1, models.City{ID: 2, Name: "fresh"}), nil
		},
		ID: cityID,
	})

	first := make(chan error, 1)
	go func() { first <- r.Fetch(context.Background()) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, time.Millisecond)

	// a newer fetch completes while the first is still in flight
	require.NoError(t, r.Fetch(context.Background()))

	close(block)
	require.NoError(t, <-first)

	items := r.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].Name)
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyhome/adminctl/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Options{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Locale:  func() string { return "uz" },
	})
	require.NoError(t, err)
	return c, srv
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status < 300,
		"message": "",
		"data":    data,
	})
}

func TestClient_UnwrapsEnvelopeAndSetsHeaders(t *testing.T) {
	var gotLang, gotReqID, gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.Header.Get("lang")
		gotReqID = r.Header.Get("X-Request-ID")
		gotPath = r.URL.Path
		writeEnvelope(w, http.StatusOK, map[string]any{"id": 5, "name": "Tashkent"})
	}))

	city, err := c.GetCity(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, models.City{ID: 5, Name: "Tashkent"}, city)
	assert.Equal(t, "uz", gotLang)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "/api/website/v1/cities/5/", gotPath)
}

func TestClient_ListUnwrapsPage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{
			"count":    42,
			"next":     "http://x/api/website/v1/cities/?page=2",
			"previous": nil,
			"results":  []map[string]any{{"id": 1, "name": "Tashkent"}},
		})
	}))

	page, err := c.ListCities(context.Background(), ListFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(42), page.Count)
	require.NotNil(t, page.Next)
	assert.Nil(t, page.Previous)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Tashkent", page.Results[0].Name)
}

func TestClient_EmptyResultsNeverNil(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{"count": 0, "results": []any{}})
	}))

	page, err := c.ListCities(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}

func TestClient_QueryOmitsEmptyFilterFields(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeEnvelope(w, http.StatusOK, map[string]any{"count": 0, "results": []any{}})
	}))

	_, err := c.ListProperties(context.Background(), PropertyFilter{
		Search:   "kvartira",
		City:     3,
		Page:     2,
		PageSize: 50,
	})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "search=kvartira")
	assert.Contains(t, gotQuery, "city=3")
	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "page_size=50")
	assert.NotContains(t, gotQuery, "category")
	assert.NotContains(t, gotQuery, "transaction_type")
	assert.NotContains(t, gotQuery, "status")
	assert.NotContains(t, gotQuery, "ordering")
}

func TestClient_NonSuccessCarriesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"status": false, "message": "city has districts attached", "data": null}`)
	}))

	err := c.DeleteCity(context.Background(), 1)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.StatusCode)
	assert.Equal(t, "city has districts attached", err.Error())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClient_NonSuccessWithoutBodyFallsBackToOpMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.ListProperties(context.Background(), PropertyFilter{})
	require.Error(t, err)
	assert.Equal(t, "failed to fetch properties (status 502)", err.Error())
}

func TestClient_UnauthorizedMapsToSentinel(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := c.CheckSession(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_TransportFailureMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c, err := New(Options{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.ListCities(context.Background(), ListFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_SessionCookiePersistsAcrossCalls(t *testing.T) {
	var sawCookie bool
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/website/v1/auth/login/":
			http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "abc", Path: "/"})
			writeEnvelope(w, http.StatusOK, map[string]any{"id": 1, "name": "admin"})
		default:
			_, err := r.Cookie("sessionid")
			sawCookie = err == nil
			writeEnvelope(w, http.StatusOK, nil)
		}
	}))

	_, err := c.Login(context.Background(), Credentials{Phone: "+998901234567", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, c.CheckSession(context.Background()))
	assert.True(t, sawCookie)
}

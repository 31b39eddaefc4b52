package mockapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, srv *httptest.Server) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	body, _ := json.Marshal(map[string]string{"phone": AdminPhone, "password": AdminPassword})
	resp, err := client.Post(srv.URL+"/api/website/v1/auth/login/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return client
}

func decodeEnvelope(t *testing.T, resp *http.Response) (bool, string, json.RawMessage) {
	t.Helper()
	defer resp.Body.Close()
	var env struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Status, env.Message, env.Data
}

func TestServer_RequiresSession(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/website/v1/cities/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_RejectsBadCredentials(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()

	body, _ := json.Marshal(map[string]string{"phone": AdminPhone, "password": "nope"})
	resp, err := http.Post(srv.URL+"/api/website/v1/auth/login/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, msg, _ := decodeEnvelope(t, resp)
	assert.Equal(t, "invalid credentials", msg)
}

func TestServer_ListPaginationAndSearch(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()
	client := login(t, srv)

	resp, err := client.Get(srv.URL + "/api/website/v1/cities/?page=1&page_size=2")
	require.NoError(t, err)
	_, _, data := decodeEnvelope(t, resp)

	var page struct {
		Count   int               `json:"count"`
		Next    *string           `json:"next"`
		Results []json.RawMessage `json:"results"`
	}
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 3, page.Count)
	assert.Len(t, page.Results, 2)
	assert.NotNil(t, page.Next)

	resp, err = client.Get(srv.URL + "/api/website/v1/cities/?search=sam")
	require.NoError(t, err)
	_, _, data = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 1, page.Count)
}

func TestServer_DuplicateFeatureIs409(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()
	client := login(t, srv)

	body, _ := json.Marshal(map[string]string{"name": "balcony"}) // differs only in case
	resp, err := client.Post(srv.URL+"/api/website/v1/features/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	_, msg, _ := decodeEnvelope(t, resp)
	assert.Equal(t, "feature with this name already exists", msg)
}

func TestServer_CRUDRoundTrip(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()
	client := login(t, srv)

	// create
	body, _ := json.Marshal(map[string]string{"name": "Khiva"})
	resp, err := client.Post(srv.URL+"/api/website/v1/cities/", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_, _, data := decodeEnvelope(t, resp)

	var city struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(data, &city))
	assert.Equal(t, "Khiva", city.Name)
	require.NotZero(t, city.ID)

	// update
	body, _ = json.Marshal(map[string]string{"name": "Xiva"})
	req, _ := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/api/website/v1/cities/%d/", srv.URL, city.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = client.Do(req)
	require.NoError(t, err)
	_, _, data = decodeEnvelope(t, resp)
	require.NoError(t, json.Unmarshal(data, &city))
	assert.Equal(t, "Xiva", city.Name)

	// delete, then 404 on get
	req, _ = http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/website/v1/cities/%d/", srv.URL, city.ID), nil)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(fmt.Sprintf("%s/api/website/v1/cities/%d/", srv.URL, city.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_PageBySlug(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()
	client := login(t, srv)

	resp, err := client.Get(srv.URL + "/api/website/v1/pages/slug/about/")
	require.NoError(t, err)
	_, _, data := decodeEnvelope(t, resp)

	var page struct {
		Slug    string `json:"slug"`
		TitleEn string `json:"title_en"`
	}
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, "about", page.Slug)
	assert.Equal(t, "About us", page.TitleEn)
}

func TestServer_PaymentStatsWindow(t *testing.T) {
	srv := httptest.NewServer(New().Handler())
	defer srv.Close()
	client := login(t, srv)

	resp, err := client.Get(srv.URL + "/api/website/v1/payments/stats/?date_from=2026-08-24")
	require.NoError(t, err)
	_, _, data := decodeEnvelope(t, resp)

	var stats struct {
		TotalAmount float64 `json:"total_amount"`
		TotalCount  int64   `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(data, &stats))
	// only the paid payment on 2026-08-25 falls in the window
	assert.Equal(t, float64(150000), stats.TotalAmount)
	assert.Equal(t, int64(1), stats.TotalCount)
}

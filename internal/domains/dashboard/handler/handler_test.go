package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	content "venue-content-backend/internal/domains/content/model"
	"venue-content-backend/internal/domains/dashboard/model"
)

type stubAggregator struct {
	calls int
	err   error
}

func (s *stubAggregator) Counts(context.Context) (*model.Counts, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &model.Counts{Events: 4, InstagramPosts: 12}, nil
}

func (s *stubAggregator) VenuePage(_ context.Context, venue content.VenueTag, now time.Time) (*model.VenuePage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	page := model.EmptyPage(venue, now.Weekday().String())
	page.Content = map[string]string{"hero_title": "Live every night"}
	return page, nil
}

func (s *stubAggregator) ExportEvents(context.Context, content.VenueTag) (*excelize.File, int, error) {
	return excelize.NewFile(), 0, s.err
}

// memoryCache is a JSON round-tripping map, like the Redis cache.
type memoryCache struct {
	items map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{items: map[string][]byte{}} }

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	b, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	m.items[key] = b
	return err
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

func (m *memoryCache) DeletePattern(_ context.Context, pattern string) error {
	prefix := pattern[:len(pattern)-1]
	for k := range m.items {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.items, k)
		}
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

type body struct {
	Data map[string]any `json:"data"`
	Meta *struct {
		DataError bool   `json:"dataError"`
		Warning   string `json:"warning"`
		Cached    string `json:"cached"`
	} `json:"meta"`
}

func get(r http.Handler, path string) (int, body) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var b body
	_ = json.Unmarshal(w.Body.Bytes(), &b)
	return w.Code, b
}

func router(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/venues/:venue/page", h.VenuePage)
	r.GET("/admin/dashboard", h.Counts)
	r.GET("/admin/events/export", h.ExportEvents)
	return r
}

func TestVenuePageFallbackChain(t *testing.T) {
	agg := &stubAggregator{}
	cache := newMemoryCache()
	r := router(NewHandler(agg, cache, Config{PageTTL: time.Minute, StaleTTL: time.Hour}))

	// live read fills both copies
	code, b := get(r, "/venues/rob-roy/page")
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, b.Meta)
	assert.Equal(t, map[string]any{"hero_title": "Live every night"}, b.Data["content"])
	assert.Contains(t, b.Data, "upcomingEvents")
	assert.Equal(t, 1, agg.calls)

	// fresh hit skips the store
	_, b = get(r, "/venues/rob-roy/page")
	require.NotNil(t, b.Meta)
	assert.Equal(t, "fresh", b.Meta.Cached)
	assert.Equal(t, 1, agg.calls)

	// an admin write drops fresh copies; with the store down the stale one is served
	require.NoError(t, cache.DeletePattern(context.Background(), FreshPagePattern))
	agg.err = errors.New("connection refused")
	code, b = get(r, "/venues/rob-roy/page")
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, b.Meta)
	assert.True(t, b.Meta.DataError)
	assert.Equal(t, "stale", b.Meta.Cached)
	assert.Equal(t, "Live every night", b.Data["content"].(map[string]any)["hero_title"])

	// nothing cached at all: empty page with a warning
	code, b = get(r, "/venues/konfusion/page")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, b.Meta.DataError)
	assert.NotEmpty(t, b.Meta.Warning)
	assert.Equal(t, []any{}, b.Data["upcomingEvents"])
}

func TestVenuePageWithoutCache(t *testing.T) {
	r := router(NewHandler(&stubAggregator{err: errors.New("down")}, nil, Config{}))
	code, b := get(r, "/venues/konfusion/page")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, b.Meta.DataError)

	code, _ = get(r, "/venues/both/page")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCountsDegrade(t *testing.T) {
	agg := &stubAggregator{}
	cache := newMemoryCache()
	r := router(NewHandler(agg, cache, Config{}))

	_, b := get(r, "/admin/dashboard")
	assert.Equal(t, float64(12), b.Data["instagramPosts"])

	agg.err = errors.New("down")
	code, b := get(r, "/admin/dashboard")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, b.Meta.DataError)
	assert.Equal(t, "stale", b.Meta.Cached)
	assert.Equal(t, float64(4), b.Data["events"])
}

func TestExportEventsRejectsUnknownVenue(t *testing.T) {
	r := router(NewHandler(&stubAggregator{}, nil, Config{}))
	code, _ := get(r, "/admin/events/export?venue=downtown")
	assert.Equal(t, http.StatusBadRequest, code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/events/export?venue=rob_roy", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "events-rob_roy-")
}

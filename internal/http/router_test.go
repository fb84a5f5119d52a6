package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbook/internal/config"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	return NewRouter(nil, cfg, zerolog.Nop())
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		page    int
		perPage int
		wantOK  bool
	}{
		{"defaults", "", 1, 10, true},
		{"explicit", "page=3&per_page=25", 3, 25, true},
		{"per page at cap", "per_page=50", 1, 50, true},
		{"page zero", "page=0", 0, 0, false},
		{"per page over cap", "per_page=51", 0, 0, false},
		{"per page zero", "per_page=0", 0, 0, false},
		{"not a number", "page=abc", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/venues?"+tt.query, nil)
			page, perPage, ok := parsePagination(req)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.page, page)
				assert.Equal(t, tt.perPage, perPage)
			}
		})
	}
}

func TestParseVenueFilterPresence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/venues?budget=0&capacity=0", nil)
	filter, ok := parseVenueFilter(req)
	require.True(t, ok)

	// Supplied zeros are constraints, not absent fields.
	require.NotNil(t, filter.MaxBudget)
	assert.Equal(t, float64(0), *filter.MaxBudget)
	require.NotNil(t, filter.MinCapacity)
	assert.Equal(t, 0, *filter.MinCapacity)
	assert.Nil(t, filter.Availability)
	assert.Nil(t, filter.Pincode)
	assert.Nil(t, filter.Search)
}

func TestParseVenueFilterRejectsBadValues(t *testing.T) {
	for _, query := range []string{"budget=cheap", "capacity=many", "availability=sometimes"} {
		req := httptest.NewRequest(http.MethodGet, "/api/venues?"+query, nil)
		_, ok := parseVenueFilter(req)
		assert.False(t, ok, query)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestCreateUserRejectsInvalidBody(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader("{not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing required fields fail validation before any store access.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Asha"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingRejectsMissingVenue(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"user_id":"u1"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/bookings/b1/status", strings.NewReader(`{"status":"postponed"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

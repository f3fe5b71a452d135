package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rawhoneyguide/honeyexplorer/config"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHoneyRepo struct {
	honeys []domain.Honey
}

func (s *stubHoneyRepo) Page(_ context.Context, _ *catalog.Filter, pr catalog.PageRequest) ([]domain.Honey, int64, error) {
	return s.honeys, int64(len(s.honeys)), nil
}

func (s *stubHoneyRepo) Featured(context.Context) ([]domain.Honey, error) {
	var out []domain.Honey
	for _, h := range s.honeys {
		if h.Featured {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *stubHoneyRepo) BySlug(_ context.Context, slug string) (*domain.Honey, error) {
	for i := range s.honeys {
		if s.honeys[i].Slug == slug {
			return &s.honeys[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubHoneyRepo) Similar(_ context.Context, anchorID int64, _ domain.FloralSource, _ string, limit int) ([]domain.Honey, error) {
	var out []domain.Honey
	for _, h := range s.honeys {
		if h.ID != anchorID && len(out) < limit {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *stubHoneyRepo) All(context.Context) ([]domain.Honey, error) {
	return s.honeys, nil
}

func (s *stubHoneyRepo) Count(context.Context) (int64, error) {
	return int64(len(s.honeys)), nil
}

type stubLocalSourceRepo struct {
	sources []domain.LocalSource
}

func (s *stubLocalSourceRepo) Page(_ context.Context, _ *catalog.Filter, _ catalog.PageRequest) ([]domain.LocalSource, int64, error) {
	return s.sources, int64(len(s.sources)), nil
}

func (s *stubLocalSourceRepo) All(_ context.Context, _ *catalog.Filter) ([]domain.LocalSource, error) {
	return s.sources, nil
}

func (s *stubLocalSourceRepo) ByID(_ context.Context, id int64) (*domain.LocalSource, error) {
	for i := range s.sources {
		if s.sources[i].ID == id {
			return &s.sources[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubLocalSourceRepo) BySlug(_ context.Context, slug string) (*domain.LocalSource, error) {
	for i := range s.sources {
		if s.sources[i].Slug == slug {
			return &s.sources[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubLocalSourceRepo) Count(context.Context) (int64, error) {
	return int64(len(s.sources)), nil
}

type stubEventRepo struct {
	events []domain.Event
}

func (s *stubEventRepo) Page(_ context.Context, _ *catalog.Filter, _ catalog.PageRequest) ([]domain.Event, int64, error) {
	return s.events, int64(len(s.events)), nil
}

func (s *stubEventRepo) Upcoming(_ context.Context, _ time.Time, limit int) ([]domain.Event, error) {
	if len(s.events) > limit {
		return s.events[:limit], nil
	}
	return s.events, nil
}

func (s *stubEventRepo) ByMonth(context.Context, int, time.Month) ([]domain.Event, error) {
	return s.events, nil
}

func (s *stubEventRepo) ByState(context.Context, string) ([]domain.Event, error) {
	return s.events, nil
}

func (s *stubEventRepo) ByID(_ context.Context, id int64) (*domain.Event, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			return &s.events[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubEventRepo) BySlug(_ context.Context, slug string) (*domain.Event, error) {
	for i := range s.events {
		if s.events[i].Slug == slug {
			return &s.events[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubEventRepo) All(context.Context) ([]domain.Event, error) {
	return s.events, nil
}

func (s *stubEventRepo) Count(context.Context) (int64, error) {
	return int64(len(s.events)), nil
}

type stubCityRepo struct {
	cities []domain.CityContent
}

func (s *stubCityRepo) Validated(context.Context) ([]domain.CityContent, error) {
	return s.cities, nil
}

func (s *stubCityRepo) BySlug(_ context.Context, slug string) (*domain.CityContent, error) {
	for i := range s.cities {
		if s.cities[i].Slug == slug {
			return &s.cities[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubCityRepo) CountValidated(context.Context) (int64, error) {
	return int64(len(s.cities)), nil
}

type stubNewsletterRepo struct {
	emails map[string]bool
}

func (s *stubNewsletterRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return s.emails[email], nil
}

func (s *stubNewsletterRepo) Create(_ context.Context, sub *domain.NewsletterSubscription) error {
	s.emails[sub.Email] = true
	return nil
}

func newTestServer() *Server {
	honeyRepo := &stubHoneyRepo{honeys: []domain.Honey{
		{
			ID: 1, Name: "Texas Wildflower", Slug: "texas-wildflower",
			FloralSource: domain.FloralWildflower, Type: domain.TypeRaw,
			Origin: domain.OriginUSA, FlavorProfiles: "FLORAL,SWEET", Featured: true,
			UpdatedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, Name: "Manuka UMF 15", Slug: "manuka-umf-15",
			FloralSource: domain.FloralManuka, Type: domain.TypeRaw,
			Origin: domain.OriginNewZealand, FlavorProfiles: "EARTHY,BOLD",
		},
	}}
	sourceRepo := &stubLocalSourceRepo{sources: []domain.LocalSource{
		{
			ID: 1, Name: "Hill Country Apiaries", Slug: "hill-country-apiaries",
			SourceType: domain.SourceApiary, City: "Dripping Springs", State: "TX",
			Latitude: 30.1905, Longitude: -98.0867, IsActive: true,
		},
	}}
	eventRepo := &stubEventRepo{events: []domain.Event{
		{
			ID: 1, Name: "Austin Honey Festival", Slug: "austin-honey-festival",
			EventType: domain.EventFestival, State: "TX",
			StartDate: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), IsActive: true,
		},
	}}
	cityRepo := &stubCityRepo{cities: []domain.CityContent{
		{ID: 1, City: "Austin", State: "TX", Slug: "austin-tx", Validated: true},
	}}

	honeys := catalog.NewHoneyService(honeyRepo)
	sources := catalog.NewLocalSourceService(sourceRepo)
	events := catalog.NewEventService(eventRepo)
	cities := catalog.NewCityService(cityRepo, sources, events)
	newsletter := catalog.NewNewsletterService(&stubNewsletterRepo{emails: map[string]bool{
		"taken@example.com": true,
	}})

	cfg := &config.AppConfig{Web: config.WebConfig{PublicURL: "https://rawhoneyguide.com"}}
	return NewServer(cfg, honeys, sources, events, cities, newsletter)
}

func doRequest(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestListHoneysReturnsPageEnvelope(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Content       []map[string]interface{} `json:"content"`
		Page          int                      `json:"page"`
		Size          int                      `json:"size"`
		TotalElements int64                    `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, catalog.DefaultBrowseSize, page.Size)
	assert.Equal(t, int64(2), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Wildflower", page.Content[0]["floralSourceDisplay"])
}

func TestListHoneysInvalidOriginIs400(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys?origin=ATLANTIS", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "INVALID_FILTER_VALUE", e.Code)
}

func TestListHoneysInvalidSortIs400(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys?sort=priceAsc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "INVALID_SORT_FIELD", e.Code)
}

func TestListHoneysNegativePageIs400(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys?page=-1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "INVALID_PAGE_REQUEST", e.Code)
}

func TestListHoneysNonNumericPageIs400(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys?page=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "INVALID_PAGE_REQUEST", e.Code)
}

func TestUpcomingEventsNonNumericLimitIs400(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/events/upcoming?limit=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "INVALID_REQUEST", e.Code)
}

func TestGetHoneyBySlug(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys/manuka-umf-15", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "MANUKA", dto["floralSource"])
	assert.Equal(t, "New Zealand", dto["originDisplay"])
}

func TestGetHoneyUnknownSlugIs404(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys/no-such-honey", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "NOT_FOUND", e.Code)
}

func TestSimilarHoneysForUnknownSlugIsEmpty(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/honeys/no-such-honey/similar", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestNearbyRequiresCoordinates(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/local-sources/nearby", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "INVALID_REQUEST", e.Code)
}

func TestNearbyReturnsSourcesWithDistance(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet,
		"/api/local-sources/nearby?lat=30.2672&lng=-97.7431&radius=50", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Content       []map[string]interface{} `json:"content"`
		TotalElements int64                    `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.TotalElements)
	require.Len(t, page.Content, 1)
	assert.NotNil(t, page.Content[0]["distance"])
}

func TestGetLocalSourceInvalidIDIs400(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/local-sources/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e restError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "INVALID_ID", e.Code)
}

func TestEventsCalendarRejectsBadMonth(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/events/calendar?year=2026&month=13", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventsBrowseRejectsBadDate(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/events?fromDate=10-03-2026", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilterOptionsEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/filters/options", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var opts struct {
		FloralSources  []map[string]interface{} `json:"floralSources"`
		Certifications []map[string]interface{} `json:"certifications"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Len(t, opts.FloralSources, 17)
	assert.Len(t, opts.Certifications, 8)
}

func TestCityPageWithCounts(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/api/cities/austin-tx", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dto map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "Austin", dto["city"])
}

func TestSubscribeNewsletter(t *testing.T) {
	srv := newTestServer()

	rec := doRequest(t, srv, http.MethodPost, "/api/newsletter/subscribe",
		`{"email":"New.Fan@Example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp subscribeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "subscribed", resp.Status)

	// Same address again, normalized, reports already subscribed.
	rec = doRequest(t, srv, http.MethodPost, "/api/newsletter/subscribe",
		`{"email":"new.fan@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "already_subscribed", resp.Status)
}

func TestSubscribeNewsletterRejectsBadEmail(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodPost, "/api/newsletter/subscribe",
		`{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSitemapListsCatalogPages(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/sitemap.xml", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "https://rawhoneyguide.com/honeys/texas-wildflower")
	assert.Contains(t, body, "https://rawhoneyguide.com/local-sources/hill-country-apiaries")
	assert.Contains(t, body, "https://rawhoneyguide.com/events/austin-honey-festival")
	assert.Contains(t, body, "https://rawhoneyguide.com/cities/austin-tx")
}

func TestSitemapCarriesLastModFromRecords(t *testing.T) {
	rec := doRequest(t, newTestServer(), http.MethodGet, "/sitemap.xml", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<lastmod>2026-08-15</lastmod>")
	// Static section pages have no record timestamp behind them.
	first := body[:strings.Index(body, "/honeys/")]
	assert.NotContains(t, first, "<lastmod>")
}

package catalog

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCityRepo struct {
	validated []domain.CityContent
	bySlug    map[string]*domain.CityContent
	total     int64
}

func (f *fakeCityRepo) Validated(context.Context) ([]domain.CityContent, error) {
	return f.validated, nil
}

func (f *fakeCityRepo) BySlug(_ context.Context, slug string) (*domain.CityContent, error) {
	c, ok := f.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (f *fakeCityRepo) CountValidated(context.Context) (int64, error) {
	return f.total, nil
}

func floatPtr(v float64) *float64 { return &v }

func newCityFixture(cityRepo *fakeCityRepo, sourceRepo *fakeLocalSourceRepo, eventRepo *fakeEventRepo) *CityService {
	return NewCityService(cityRepo,
		NewLocalSourceService(sourceRepo),
		NewEventService(eventRepo))
}

func TestCityFindBySlugCountsNearbyAndEvents(t *testing.T) {
	city := &domain.CityContent{
		ID:        1,
		City:      "Austin",
		State:     "TX",
		Slug:      "austin-tx",
		Latitude:  floatPtr(30.2672),
		Longitude: floatPtr(-97.7431),
		Validated: true,
	}
	sourceRepo := &fakeLocalSourceRepo{all: austinCandidates()}
	eventRepo := &fakeEventRepo{byState: []domain.Event{{ID: 1}, {ID: 2}}}
	svc := newCityFixture(&fakeCityRepo{bySlug: map[string]*domain.CityContent{city.Slug: city}}, sourceRepo, eventRepo)

	dto, err := svc.FindBySlug(context.Background(), "austin-tx")
	require.NoError(t, err)
	// Three of the four candidates fall inside the 50 mile default radius.
	assert.Equal(t, 3, dto.NearbySourcesCount)
	assert.Equal(t, 2, dto.UpcomingEventsCount)
	assert.Equal(t, "TX", eventRepo.gotState)
}

func TestCityFindBySlugWithoutCoordinatesReportsZeroCounts(t *testing.T) {
	city := &domain.CityContent{ID: 2, City: "Savannah", State: "GA", Slug: "savannah-ga", Validated: true}
	svc := newCityFixture(&fakeCityRepo{bySlug: map[string]*domain.CityContent{city.Slug: city}},
		&fakeLocalSourceRepo{}, &fakeEventRepo{byState: []domain.Event{{ID: 1}}})

	dto, err := svc.FindBySlug(context.Background(), "savannah-ga")
	require.NoError(t, err)
	assert.Equal(t, 0, dto.NearbySourcesCount)
	assert.Equal(t, 0, dto.UpcomingEventsCount)
}

func TestCityNearbySourcesWithoutCoordinatesIsNotFound(t *testing.T) {
	city := &domain.CityContent{ID: 2, City: "Savannah", State: "GA", Slug: "savannah-ga"}
	svc := newCityFixture(&fakeCityRepo{bySlug: map[string]*domain.CityContent{city.Slug: city}},
		&fakeLocalSourceRepo{}, &fakeEventRepo{})

	_, err := svc.NearbySources(context.Background(), "savannah-ga", 50, 0, 12)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCityNearbySourcesPagesAroundCity(t *testing.T) {
	city := &domain.CityContent{
		ID: 1, City: "Austin", State: "TX", Slug: "austin-tx",
		Latitude: floatPtr(30.2672), Longitude: floatPtr(-97.7431),
	}
	svc := newCityFixture(&fakeCityRepo{bySlug: map[string]*domain.CityContent{city.Slug: city}},
		&fakeLocalSourceRepo{all: austinCandidates()}, &fakeEventRepo{})

	page, err := svc.NearbySources(context.Background(), "austin-tx", 50, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(3), page.TotalElements)
}

func TestCityUnknownSlug(t *testing.T) {
	svc := newCityFixture(&fakeCityRepo{bySlug: map[string]*domain.CityContent{}},
		&fakeLocalSourceRepo{}, &fakeEventRepo{})

	_, err := svc.FindBySlug(context.Background(), "nowhere")
	assert.True(t, errors.Is(err, ErrNotFound))
}

package catalog

import (
	"context"
)

// CityService composes city landing page content with nearby source and
// upcoming event lookups.
type CityService struct {
	repo    CityContentRepository
	sources *LocalSourceService
	events  *EventService
}

func NewCityService(repo CityContentRepository, sources *LocalSourceService, events *EventService) *CityService {
	return &CityService{repo: repo, sources: sources, events: events}
}

// ListValidated returns every validated city page ordered by city name.
func (s *CityService) ListValidated(ctx context.Context) ([]CityContentDTO, error) {
	rows, err := s.repo.Validated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CityContentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, CityContentToDTO(&rows[i], 0, 0))
	}
	return out, nil
}

// FindBySlug returns the city page enriched with the count of sources
// within the default radius and of upcoming events in its state. Cities
// without coordinates report zero counts.
func (s *CityService) FindBySlug(ctx context.Context, slug string) (CityContentDTO, error) {
	city, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return CityContentDTO{}, err
	}

	nearbyCount, eventsCount := 0, 0
	if city.Latitude != nil && city.Longitude != nil {
		nearby, err := s.sources.FindNearby(ctx, *city.Latitude, *city.Longitude, DefaultNearbyRadiusMiles, nil, 0, 1)
		if err != nil {
			return CityContentDTO{}, err
		}
		nearbyCount = int(nearby.TotalElements)

		events, err := s.events.FindByState(ctx, city.State)
		if err != nil {
			return CityContentDTO{}, err
		}
		eventsCount = len(events)
	}
	return CityContentToDTO(city, nearbyCount, eventsCount), nil
}

// NearbySources pages the sources around the city's coordinates. A city
// without coordinates is treated as not found.
func (s *CityService) NearbySources(ctx context.Context, slug string, radiusMiles float64, page, size int) (Page[LocalSourceDTO], error) {
	city, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return Page[LocalSourceDTO]{}, err
	}
	if city.Latitude == nil || city.Longitude == nil {
		return Page[LocalSourceDTO]{}, ErrNotFound
	}
	return s.sources.FindNearby(ctx, *city.Latitude, *city.Longitude, radiusMiles, nil, page, size)
}

// CityEvents returns active events in the city's state.
func (s *CityService) CityEvents(ctx context.Context, slug string) ([]EventDTO, error) {
	city, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.events.FindByState(ctx, city.State)
}

// CountValidated returns the number of validated city pages.
func (s *CityService) CountValidated(ctx context.Context) (int64, error) {
	return s.repo.CountValidated(ctx)
}

package catalog

import (
	"context"
	"sort"

	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
)

// LocalSourceFilters carries the optional browse dimensions for local sources.
type LocalSourceFilters struct {
	Search      string
	SourceTypes []string
	States      []string

	// ActiveOnly true restricts to active sources; false adds no
	// condition (inactive-only is never selectable).
	ActiveOnly bool
}

func (p LocalSourceFilters) Build() (*Filter, error) {
	f := &Filter{}
	f.Search(p.Search, "name", "description", "city", "state", "zip_code")

	types, err := resolveCodes("sourceType", p.SourceTypes, func(c string) (string, error) {
		v, err := domain.ParseSourceType(c)
		return v.String(), err
	})
	if err != nil {
		return nil, err
	}
	f.In("source_type", types)

	// States are free-form postal names, not a controlled vocabulary.
	if len(p.States) > 0 {
		states := make([]interface{}, 0, len(p.States))
		for _, s := range p.States {
			states = append(states, s)
		}
		f.In("state", states)
	}

	if p.ActiveOnly {
		f.Eq("is_active", true)
	}
	return f, nil
}

// LocalSourceService serves local source browse, map and proximity queries.
type LocalSourceService struct {
	repo LocalSourceRepository
}

func NewLocalSourceService(repo LocalSourceRepository) *LocalSourceService {
	return &LocalSourceService{repo: repo}
}

// Browse returns one page of local sources matching the filters.
func (s *LocalSourceService) Browse(ctx context.Context, filters LocalSourceFilters, pr PageRequest) (Page[LocalSourceDTO], error) {
	f, err := filters.Build()
	if err != nil {
		return Page[LocalSourceDTO]{}, err
	}
	rows, total, err := s.repo.Page(ctx, f, pr)
	if err != nil {
		return Page[LocalSourceDTO]{}, err
	}
	return NewPage(localSourceDTOs(rows), pr.Page, pr.Size, total), nil
}

// FindNearby returns active sources within radiusMiles of the given point,
// ordered by ascending great-circle distance.
//
// The candidate set is read unbounded and distances are computed, filtered,
// sorted and paginated in memory: distance is a per-query derived value the
// store cannot index, and the catalog is small enough to scan per request.
// This is deliberately a separate code path from storage-delegated
// pagination and must not be unified with it.
func (s *LocalSourceService) FindNearby(ctx context.Context, lat, lng, radiusMiles float64, sourceTypes []string, page, size int) (Page[LocalSourceDTO], error) {
	if page < 0 || size < 1 {
		return Page[LocalSourceDTO]{}, ErrInvalidPageRequest
	}
	f, err := (LocalSourceFilters{SourceTypes: sourceTypes, ActiveOnly: true}).Build()
	if err != nil {
		return Page[LocalSourceDTO]{}, err
	}
	candidates, err := s.repo.All(ctx, f)
	if err != nil {
		return Page[LocalSourceDTO]{}, err
	}

	nearby := make([]LocalSourceDTO, 0, len(candidates))
	for i := range candidates {
		src := &candidates[i]
		distance := HaversineMiles(lat, lng, src.Latitude, src.Longitude)
		if distance <= radiusMiles {
			nearby = append(nearby, LocalSourceWithDistance(src, &distance))
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool {
		return *nearby[i].Distance < *nearby[j].Distance
	})

	// Manual pagination. Past the last page the content is empty but the
	// total still reflects every match, so callers can compute page counts.
	total := len(nearby)
	start := page * size
	if start >= total {
		return NewPage([]LocalSourceDTO{}, page, size, int64(total)), nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return NewPage(nearby[start:end], page, size, int64(total)), nil
}

// FindAllForMap returns every matching source without pagination for
// map display.
func (s *LocalSourceService) FindAllForMap(ctx context.Context, sourceTypes []string, activeOnly bool) ([]LocalSourceDTO, error) {
	f, err := (LocalSourceFilters{SourceTypes: sourceTypes, ActiveOnly: activeOnly}).Build()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.All(ctx, f)
	if err != nil {
		return nil, err
	}
	return localSourceDTOs(rows), nil
}

// FindByID returns the source with the given id or ErrNotFound.
func (s *LocalSourceService) FindByID(ctx context.Context, id int64) (LocalSourceDTO, error) {
	src, err := s.repo.ByID(ctx, id)
	if err != nil {
		return LocalSourceDTO{}, err
	}
	return LocalSourceToDTO(src), nil
}

// FindBySlug returns the source with the given slug or ErrNotFound.
func (s *LocalSourceService) FindBySlug(ctx context.Context, slug string) (LocalSourceDTO, error) {
	src, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return LocalSourceDTO{}, err
	}
	return LocalSourceToDTO(src), nil
}

func (s *LocalSourceService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func localSourceDTOs(rows []domain.LocalSource) []LocalSourceDTO {
	out := make([]LocalSourceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, LocalSourceToDTO(&rows[i]))
	}
	return out
}

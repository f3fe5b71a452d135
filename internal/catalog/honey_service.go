package catalog

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
)

// HoneyFilters carries the optional browse dimensions for honeys.
// Enum fields take external codes and are resolved during Build.
type HoneyFilters struct {
	Search        string
	Origins       []string
	FloralSources []string
	Types         []string
	PriceMin      *float64
	PriceMax      *float64
}

// Build resolves the filter parameters into a storage predicate. An
// unresolvable enum code fails with InvalidFilterValueError.
func (p HoneyFilters) Build() (*Filter, error) {
	f := &Filter{}
	f.Search(p.Search, "name", "description", "brand")

	origins, err := resolveCodes("origin", p.Origins, func(c string) (string, error) {
		v, err := domain.ParseHoneyOrigin(c)
		return v.String(), err
	})
	if err != nil {
		return nil, err
	}
	f.In("origin", origins)

	floral, err := resolveCodes("floralSource", p.FloralSources, func(c string) (string, error) {
		v, err := domain.ParseFloralSource(c)
		return v.String(), err
	})
	if err != nil {
		return nil, err
	}
	f.In("floral_source", floral)

	types, err := resolveCodes("type", p.Types, func(c string) (string, error) {
		v, err := domain.ParseHoneyType(c)
		return v.String(), err
	})
	if err != nil {
		return nil, err
	}
	f.In("type", types)

	// Both bounds are optional and independent; param consistency is not
	// checked, matching the permissive browse contract.
	if p.PriceMin != nil {
		f.GTE("price_min", *p.PriceMin)
	}
	if p.PriceMax != nil {
		f.LTE("price_max", *p.PriceMax)
	}
	return f, nil
}

func resolveCodes(field string, codes []string, parse func(string) (string, error)) ([]interface{}, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	resolved := make([]interface{}, 0, len(codes))
	for _, code := range codes {
		v, err := parse(code)
		if err != nil {
			return nil, &InvalidFilterValueError{Field: field, Value: code}
		}
		resolved = append(resolved, v)
	}
	return resolved, nil
}

// HoneyService serves honey browse, featured, lookup and similarity queries.
type HoneyService struct {
	repo HoneyRepository
}

func NewHoneyService(repo HoneyRepository) *HoneyService {
	return &HoneyService{repo: repo}
}

// Browse returns one page of honeys matching the filters.
func (s *HoneyService) Browse(ctx context.Context, filters HoneyFilters, pr PageRequest) (Page[HoneyDTO], error) {
	f, err := filters.Build()
	if err != nil {
		return Page[HoneyDTO]{}, err
	}
	rows, total, err := s.repo.Page(ctx, f, pr)
	if err != nil {
		return Page[HoneyDTO]{}, err
	}
	return NewPage(honeyDTOs(rows), pr.Page, pr.Size, total), nil
}

// FindFeatured returns every featured honey for the homepage carousel.
// The featured set is expected to stay small, so it is not paginated.
func (s *HoneyService) FindFeatured(ctx context.Context) ([]HoneyDTO, error) {
	rows, err := s.repo.Featured(ctx)
	if err != nil {
		return nil, err
	}
	return honeyDTOs(rows), nil
}

// FindBySlug returns the honey with the given slug or ErrNotFound.
func (s *HoneyService) FindBySlug(ctx context.Context, slug string) (HoneyDTO, error) {
	h, err := s.repo.BySlug(ctx, slug)
	if err != nil {
		return HoneyDTO{}, err
	}
	return HoneyToDTO(h), nil
}

// FindSimilar returns up to limit honeys matching the anchor's floral
// source or primary flavor profile. A missing anchor yields an empty
// result rather than an error: "show nothing" is the UI fallback.
func (s *HoneyService) FindSimilar(ctx context.Context, slug string, limit int) ([]HoneyDTO, error) {
	anchor, err := s.repo.BySlug(ctx, slug)
	if errors.Is(err, ErrNotFound) {
		return []HoneyDTO{}, nil
	}
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Similar(ctx, anchor.ID, anchor.FloralSource, anchor.PrimaryFlavor(), limit)
	if err != nil {
		return nil, err
	}
	return honeyDTOs(rows), nil
}

func (s *HoneyService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// FindAll returns every honey, used for sitemap rendering.
func (s *HoneyService) FindAll(ctx context.Context) ([]HoneyDTO, error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return honeyDTOs(rows), nil
}

func honeyDTOs(rows []domain.Honey) []HoneyDTO {
	out := make([]HoneyDTO, 0, len(rows))
	for i := range rows {
		out = append(out, HoneyToDTO(&rows[i]))
	}
	return out
}

package catalog

import "github.com/rawhoneyguide/honeyexplorer/internal/domain"

// EnumOption is one selectable filter value for the faceted search UI.
type EnumOption struct {
	Value       string `json:"value"`
	DisplayName string `json:"displayName"`
	Count       int64  `json:"count"`
}

// FilterOptionsDTO lists every controlled vocabulary with display labels.
type FilterOptionsDTO struct {
	FloralSources  []EnumOption `json:"floralSources"`
	Origins        []EnumOption `json:"origins"`
	Types          []EnumOption `json:"types"`
	FlavorProfiles []EnumOption `json:"flavorProfiles"`
	SourceTypes    []EnumOption `json:"sourceTypes"`
	Certifications []EnumOption `json:"certifications"`
}

// FilterOptions projects all six vocabularies into option lists. Counts
// are fixed at zero until per-facet aggregation lands; populating them
// needs an aggregation query the storage contract does not yet offer.
func FilterOptions() FilterOptionsDTO {
	return FilterOptionsDTO{
		FloralSources:  enumOptions(domain.FloralSources),
		Origins:        enumOptions(domain.HoneyOrigins),
		Types:          enumOptions(domain.HoneyTypes),
		FlavorProfiles: enumOptions(domain.FlavorProfiles),
		SourceTypes:    enumOptions(domain.SourceTypes),
		Certifications: enumOptions(domain.Certifications),
	}
}

type displayable interface {
	~string
	DisplayName() string
}

func enumOptions[T displayable](values []T) []EnumOption {
	out := make([]EnumOption, 0, len(values))
	for _, v := range values {
		out = append(out, EnumOption{Value: string(v), DisplayName: v.DisplayName(), Count: 0})
	}
	return out
}

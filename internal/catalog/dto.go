package catalog

import (
	"time"

	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
)

// Every vocabulary field is projected twice: the stable machine code used
// for filter round-trips and the human readable display label.

// HoneyDTO is the wire projection of a honey record.
type HoneyDTO struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	FloralSource        string    `json:"floralSource"`
	FloralSourceDisplay string    `json:"floralSourceDisplay"`
	Type                string    `json:"type"`
	TypeDisplay         string    `json:"typeDisplay"`
	Origin              string    `json:"origin"`
	OriginDisplay       string    `json:"originDisplay"`
	Region              string    `json:"region"`
	FlavorProfiles      string    `json:"flavorProfiles"`
	ImageUrl            string    `json:"imageUrl"`
	ThumbnailUrl        string    `json:"thumbnailUrl"`
	Brand               string    `json:"brand"`
	PriceMin            *float64  `json:"priceMin"`
	PriceMax            *float64  `json:"priceMax"`
	Certifications      string    `json:"certifications"`
	UmfRating           *int      `json:"umfRating"`
	MgoRating           *int      `json:"mgoRating"`
	Slug                string    `json:"slug"`
	Featured            bool      `json:"featured"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func HoneyToDTO(h *domain.Honey) HoneyDTO {
	return HoneyDTO{
		ID:                  h.ID,
		Name:                h.Name,
		Description:         h.Description,
		FloralSource:        h.FloralSource.String(),
		FloralSourceDisplay: h.FloralSource.DisplayName(),
		Type:                h.Type.String(),
		TypeDisplay:         h.Type.DisplayName(),
		Origin:              h.Origin.String(),
		OriginDisplay:       h.Origin.DisplayName(),
		Region:              h.Region,
		FlavorProfiles:      h.FlavorProfiles,
		ImageUrl:            h.ImageUrl,
		ThumbnailUrl:        h.ThumbnailUrl,
		Brand:               h.Brand,
		PriceMin:            h.PriceMin,
		PriceMax:            h.PriceMax,
		Certifications:      h.Certifications,
		UmfRating:           h.UmfRating,
		MgoRating:           h.MgoRating,
		Slug:                h.Slug,
		Featured:            h.Featured,
		UpdatedAt:           h.UpdatedAt,
	}
}

// LocalSourceDTO is the wire projection of a local source. Distance is set
// only by proximity search and carries the computed miles for that query.
type LocalSourceDTO struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	SourceType        string    `json:"sourceType"`
	SourceTypeDisplay string    `json:"sourceTypeDisplay"`
	Description       string    `json:"description"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	ZipCode           string    `json:"zipCode"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Website           string    `json:"website"`
	HoursJson         string    `json:"hoursJson"`
	HeroImageUrl      string    `json:"heroImageUrl"`
	ThumbnailUrl      string    `json:"thumbnailUrl"`
	InstagramHandle   string    `json:"instagramHandle"`
	FacebookUrl       string    `json:"facebookUrl"`
	IsActive          bool      `json:"isActive"`
	Slug              string    `json:"slug"`
	Distance          *float64  `json:"distance"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func LocalSourceToDTO(s *domain.LocalSource) LocalSourceDTO {
	return LocalSourceWithDistance(s, nil)
}

func LocalSourceWithDistance(s *domain.LocalSource, distance *float64) LocalSourceDTO {
	return LocalSourceDTO{
		ID:                s.ID,
		Name:              s.Name,
		SourceType:        s.SourceType.String(),
		SourceTypeDisplay: s.SourceType.DisplayName(),
		Description:       s.Description,
		Address:           s.Address,
		City:              s.City,
		State:             s.State,
		ZipCode:           s.ZipCode,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		Phone:             s.Phone,
		Email:             s.Email,
		Website:           s.Website,
		HoursJson:         s.HoursJson,
		HeroImageUrl:      s.HeroImageUrl,
		ThumbnailUrl:      s.ThumbnailUrl,
		InstagramHandle:   s.InstagramHandle,
		FacebookUrl:       s.FacebookUrl,
		IsActive:          s.IsActive,
		Slug:              s.Slug,
		Distance:          distance,
		UpdatedAt:         s.UpdatedAt,
	}
}

// EventDTO is the wire projection of an event. LocalSourceID and
// LocalSourceName reflect the optional weak reference to a hosting source.
type EventDTO struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	EventType        string     `json:"eventType"`
	EventTypeDisplay string     `json:"eventTypeDisplay"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	Latitude         *float64   `json:"latitude"`
	Longitude        *float64   `json:"longitude"`
	ImageUrl         string     `json:"imageUrl"`
	ThumbnailUrl     string     `json:"thumbnailUrl"`
	Link             string     `json:"link"`
	LocalSourceID    *int64     `json:"localSourceId"`
	LocalSourceName  string     `json:"localSourceName"`
	Slug             string     `json:"slug"`
	IsActive         bool       `json:"isActive"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func EventToDTO(e *domain.Event) EventDTO {
	return EventDTO{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		EventType:        e.EventType.String(),
		EventTypeDisplay: e.EventType.DisplayName(),
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Address:          e.Address,
		City:             e.City,
		State:            e.State,
		Latitude:         e.Latitude,
		Longitude:        e.Longitude,
		ImageUrl:         e.ImageUrl,
		ThumbnailUrl:     e.ThumbnailUrl,
		Link:             e.Link,
		LocalSourceID:    e.LocalSourceID,
		LocalSourceName:  e.LocalSourceName,
		Slug:             e.Slug,
		IsActive:         e.IsActive,
		UpdatedAt:        e.UpdatedAt,
	}
}

// CityContentDTO is the wire projection of a city landing page, optionally
// enriched with nearby source and upcoming event counts.
type CityContentDTO struct {
	ID                  int64     `json:"id"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	Slug                string    `json:"slug"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	IntroText           string    `json:"introText"`
	HoneyFacts          string    `json:"honeyFacts"`
	BuyingTips          string    `json:"buyingTips"`
	BestSeasons         string    `json:"bestSeasons"`
	FaqJson             string    `json:"faqJson"`
	Validated           bool      `json:"validated"`
	ValidationScore     *int      `json:"validationScore"`
	NearbySourcesCount  int       `json:"nearbySourcesCount"`
	UpcomingEventsCount int       `json:"upcomingEventsCount"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func CityContentToDTO(c *domain.CityContent, nearbySources, upcomingEvents int) CityContentDTO {
	return CityContentDTO{
		ID:                  c.ID,
		City:                c.City,
		State:               c.State,
		Slug:                c.Slug,
		Latitude:            c.Latitude,
		Longitude:           c.Longitude,
		IntroText:           c.IntroText,
		HoneyFacts:          c.HoneyFacts,
		BuyingTips:          c.BuyingTips,
		BestSeasons:         c.BestSeasons,
		FaqJson:             c.FaqJson,
		Validated:           c.Validated,
		ValidationScore:     c.ValidationScore,
		NearbySourcesCount:  nearbySources,
		UpcomingEventsCount: upcomingEvents,
		UpdatedAt:           c.UpdatedAt,
	}
}

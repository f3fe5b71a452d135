package domain

import (
	"strings"
	"time"
)

// Honey represents a honey variety in the catalog.
// Designed for faceted filtering and visual-first display.
type Honey struct {
	ID           int64        `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"index;size:200" json:"name"`
	Description  string       `gorm:"size:500" json:"description"`
	FloralSource FloralSource `gorm:"size:50;index" json:"floral_source"`
	Type         HoneyType    `gorm:"size:30;index" json:"type"`
	Origin       HoneyOrigin  `gorm:"size:30;index" json:"origin"`

	// Region is more specific than origin, e.g. "California" when origin is USA.
	Region string `gorm:"size:100" json:"region"`

	// FlavorProfiles holds comma separated FlavorProfile codes,
	// e.g. "SWEET,FLORAL,MILD". The first token is the primary flavor.
	FlavorProfiles string `gorm:"size:200" json:"flavor_profiles"`

	ImageUrl     string   `gorm:"size:500" json:"image_url"`
	ThumbnailUrl string   `gorm:"size:500" json:"thumbnail_url"`
	Brand        string   `gorm:"size:100" json:"brand"`
	PriceMin     *float64 `json:"price_min"`
	PriceMax     *float64 `json:"price_max"`

	// Certifications holds comma separated Certification codes.
	Certifications string `gorm:"size:200" json:"certifications"`

	// UMF and MGO ratings apply to Manuka honey only.
	UmfRating *int `json:"umf_rating"`
	MgoRating *int `json:"mgo_rating"`

	PurchaseUrl string `gorm:"size:500" json:"purchase_url"`

	// Slug is the SEO friendly URL identifier, unique and stable once assigned.
	Slug     string `gorm:"uniqueIndex;size:200" json:"slug"`
	Featured bool   `gorm:"index" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Data freshness tracking.
	LastVerifiedAt     *time.Time `json:"last_verified_at"`
	VerificationSource string     `gorm:"size:50" json:"verification_source"`
	IsVerified         bool       `json:"is_verified"`
}

// PrimaryFlavor returns the first comma separated flavor profile token.
func (h *Honey) PrimaryFlavor() string {
	first, _, _ := strings.Cut(h.FlavorProfiles, ",")
	return strings.TrimSpace(first)
}

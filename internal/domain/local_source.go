package domain

import "time"

// LocalSource represents a local honey source such as a beekeeper,
// farm, market or store, discoverable by location.
type LocalSource struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"index;size:200" json:"name"`
	SourceType  SourceType `gorm:"size:30;index" json:"source_type"`
	Description string     `gorm:"size:1000" json:"description"`
	Address     string     `gorm:"size:255" json:"address"`
	City        string     `gorm:"size:100;index" json:"city"`
	State       string     `gorm:"size:50;index" json:"state"`
	ZipCode     string     `gorm:"size:10" json:"zip_code"`

	// Latitude and Longitude are both required, partial geocoding is not allowed.
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:255" json:"email"`
	Website string `gorm:"size:255" json:"website"`

	// HoursJson stores business hours as JSON, e.g. {"mon":"9-5",...}.
	HoursJson string `gorm:"type:text" json:"hours_json"`

	HeroImageUrl    string `gorm:"size:500" json:"hero_image_url"`
	ThumbnailUrl    string `gorm:"size:500" json:"thumbnail_url"`
	InstagramHandle string `gorm:"size:100" json:"instagram_handle"`
	FacebookUrl     string `gorm:"size:255" json:"facebook_url"`

	IsActive bool   `gorm:"index;default:true" json:"is_active"`
	Slug     string `gorm:"uniqueIndex;size:200" json:"slug"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LastVerifiedAt     *time.Time `json:"last_verified_at"`
	VerificationSource string     `gorm:"size:50" json:"verification_source"`
	IsVerified         bool       `json:"is_verified"`
}

package domain

import "time"

// Event represents a honey related event such as a festival, market or class.
// Start and end dates are calendar dates stored at midnight UTC.
type Event struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"index;size:200" json:"name"`
	Description string    `gorm:"size:2000" json:"description"`
	EventType   EventType `gorm:"size:20;index" json:"event_type"`

	StartDate time.Time  `gorm:"index;not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:50;index" json:"state"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	ImageUrl     string `gorm:"size:500" json:"image_url"`
	ThumbnailUrl string `gorm:"size:500" json:"thumbnail_url"`

	// Link points to the event website or registration page.
	Link string `gorm:"size:255" json:"link"`

	// LocalSourceID is a weak reference to the hosting local source.
	// LocalSourceName caches the display name so event listings never
	// need a join; absence of both is valid and common.
	LocalSourceID   *int64 `gorm:"index" json:"local_source_id"`
	LocalSourceName string `gorm:"size:200" json:"local_source_name"`

	Slug     string `gorm:"uniqueIndex;size:200" json:"slug"`
	IsActive bool   `gorm:"index;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	LastVerifiedAt     *time.Time `json:"last_verified_at"`
	VerificationSource string     `gorm:"size:50" json:"verification_source"`
	IsVerified         bool       `json:"is_verified"`
}

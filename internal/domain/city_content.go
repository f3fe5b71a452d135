package domain

import "time"

// CityContent holds city specific content for local SEO landing pages.
type CityContent struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	City  string `gorm:"size:100;not null" json:"city"`
	State string `gorm:"size:50;not null;index" json:"state"`
	Slug  string `gorm:"uniqueIndex;size:100;not null" json:"slug"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	IntroText   string `gorm:"type:text" json:"intro_text"`
	HoneyFacts  string `gorm:"type:text" json:"honey_facts"`
	BuyingTips  string `gorm:"type:text" json:"buying_tips"`
	BestSeasons string `gorm:"type:text" json:"best_seasons"`

	// FaqJson stores FAQ entries as a JSON array of question/answer objects.
	FaqJson string `gorm:"type:text" json:"faq_json"`

	Validated bool `gorm:"index" json:"validated"`

	// ValidationScore is a 1-10 content quality score; the range is
	// informational and not enforced.
	ValidationScore *int `json:"validation_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package domain

import "time"

// NewsletterSubscription records a newsletter signup. Emails are stored
// lowercased and deduplicated.
type NewsletterSubscription struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Confirmed    bool      `json:"confirmed"`
	SubscribedAt time.Time `json:"subscribed_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

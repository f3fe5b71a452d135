package store

import (
	"context"

	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"gorm.io/gorm"
)

// GormNewsletterRepository is the GORM implementation of
// catalog.NewsletterRepository.
type GormNewsletterRepository struct {
	db *gorm.DB
}

func NewGormNewsletterRepository(db *gorm.DB) *GormNewsletterRepository {
	return &GormNewsletterRepository{db: db}
}

func (r *GormNewsletterRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.NewsletterSubscription{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *GormNewsletterRepository) Create(ctx context.Context, sub *domain.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

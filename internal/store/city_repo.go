package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"gorm.io/gorm"
)

// GormCityContentRepository is the GORM implementation of
// catalog.CityContentRepository.
type GormCityContentRepository struct {
	db *gorm.DB
}

func NewGormCityContentRepository(db *gorm.DB) *GormCityContentRepository {
	return &GormCityContentRepository{db: db}
}

func (r *GormCityContentRepository) Validated(ctx context.Context) ([]domain.CityContent, error) {
	var rows []domain.CityContent
	err := r.db.WithContext(ctx).
		Where("validated = ?", true).
		Order("city ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormCityContentRepository) BySlug(ctx context.Context, slug string) (*domain.CityContent, error) {
	var c domain.CityContent
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCityContentRepository) CountValidated(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.CityContent{}).
		Where("validated = ?", true).
		Count(&total).Error
	return total, err
}

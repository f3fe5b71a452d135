package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"gorm.io/gorm"
)

// GormLocalSourceRepository is the GORM implementation of
// catalog.LocalSourceRepository.
type GormLocalSourceRepository struct {
	db *gorm.DB
}

func NewGormLocalSourceRepository(db *gorm.DB) *GormLocalSourceRepository {
	return &GormLocalSourceRepository{db: db}
}

func (r *GormLocalSourceRepository) Page(ctx context.Context, f *catalog.Filter, pr catalog.PageRequest) ([]domain.LocalSource, int64, error) {
	tx := applyFilter(r.db.WithContext(ctx).Model(&domain.LocalSource{}), f)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.LocalSource
	err := tx.Order(pageOrder(pr)).Offset(pr.Offset()).Limit(pr.Size).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormLocalSourceRepository) All(ctx context.Context, f *catalog.Filter) ([]domain.LocalSource, error) {
	var rows []domain.LocalSource
	err := applyFilter(r.db.WithContext(ctx).Model(&domain.LocalSource{}), f).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormLocalSourceRepository) ByID(ctx context.Context, id int64) (*domain.LocalSource, error) {
	var s domain.LocalSource
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormLocalSourceRepository) BySlug(ctx context.Context, slug string) (*domain.LocalSource, error) {
	var s domain.LocalSource
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormLocalSourceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.LocalSource{}).Count(&total).Error
	return total, err
}

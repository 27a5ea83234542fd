package repositories

import (
	"context"

	"github.com/hqvu/furnistore/app/models"
	"gorm.io/gorm"
)

type LocationRepository interface {
	// FindChildren lists the locations under a parent; a nil parent
	// yields the provinces.
	FindChildren(ctx context.Context, parentID *int) ([]models.Location, error)
}

type gormLocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &gormLocationRepository{db: db}
}

func (r *gormLocationRepository) FindChildren(ctx context.Context, parentID *int) ([]models.Location, error) {
	query := r.db.WithContext(ctx).Model(&models.Location{})
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}

	var locations []models.Location
	err := query.Order("name ASC").Find(&locations).Error
	return locations, err
}

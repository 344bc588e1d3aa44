package database

import (
	"context"

	"gorm.io/gorm"

	"storefront-service/models"
)

// CatalogRepository defines the read-only queries against the hosted
// restaurant/menu tables.
type CatalogRepository interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	FindRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	FindMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository.
func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.WithContext(ctx).
		Order("rating DESC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *GormCatalogRepository) FindRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *GormCatalogRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC").
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormCatalogRepository) FindMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

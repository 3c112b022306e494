package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"

	"gorm.io/gorm"
)

type RestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("find restaurant %d: %w", id, err)
	}
	return &restaurant, nil
}

package repository

import (
	"context"
	"fmt"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"
	"restaurant-menu-api/tenant"

	"gorm.io/gorm"
)

// MenuRepository reads and writes rows of a restaurant's menu table.
type MenuRepository interface {
	ListCategories(ctx context.Context, restaurantID string) ([]string, error)
	ListItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	AddItem(ctx context.Context, restaurantID string, item models.MenuItem) (*models.MenuItem, error)
}

type menuRepository struct {
	db       *gorm.DB
	resolver *tenant.Resolver
}

func NewMenuRepository(db *gorm.DB, resolver *tenant.Resolver) MenuRepository {
	return &menuRepository{db: db, resolver: resolver}
}

// ListCategories returns each non-NULL category once, in whatever order
// the database yields them.
func (r *menuRepository) ListCategories(ctx context.Context, restaurantID string) ([]string, error) {
	table, err := r.resolver.Resolve(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	categories := []string{}
	err = r.db.WithContext(ctx).
		Table(table.Name).
		Where("category IS NOT NULL").
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, queryError(table, "list categories", err)
	}
	return categories, nil
}

func (r *menuRepository) ListItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	table, err := r.resolver.Resolve(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{}
	if err := r.db.WithContext(ctx).Table(table.Name).Find(&items).Error; err != nil {
		return nil, queryError(table, "list items", err)
	}
	return items, nil
}

// AddItem inserts item and returns it with its generated id. Only the
// table's own constraints validate the fields.
func (r *menuRepository) AddItem(ctx context.Context, restaurantID string, item models.MenuItem) (*models.MenuItem, error) {
	table, err := r.resolver.Resolve(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	item.ID = 0
	if err := r.db.WithContext(ctx).Table(table.Name).Create(&item).Error; err != nil {
		return nil, queryError(table, "add item", err)
	}
	return &item, nil
}

// queryError maps a table dropped between probe and query back to the
// not-found outcome the probe would have produced.
func queryError(table tenant.Table, op string, err error) error {
	if isUndefinedTable(err) {
		return &apperr.TenantNotFoundError{Table: table.Name}
	}
	return fmt.Errorf("%s in %s: %w", op, table.Name, err)
}

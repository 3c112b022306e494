// Package tenant maps restaurant identifiers onto their menu tables.
package tenant

import (
	"context"
	"fmt"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/metrics"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TablePrefix is prepended to the restaurant identifier to form the
// menu table name.
const TablePrefix = "menu_"

// identifierRule admits plain decimal digits only, so the identifier can
// be spliced into a table name without quoting.
const identifierRule = "required,number,max=18"

// Table is a menu table confirmed to exist at resolution time.
type Table struct {
	RestaurantID string
	Name         string
}

// TableName returns the menu table name for restaurantID without
// checking it.
func TableName(restaurantID string) string {
	return TablePrefix + restaurantID
}

// Resolver validates restaurant identifiers and probes the schema
// catalog for their menu tables. Tables are provisioned and dropped by an
// external job, so nothing is cached between calls.
type Resolver struct {
	db       *gorm.DB
	validate *validator.Validate
	metrics  *metrics.Metrics
}

func NewResolver(db *gorm.DB, m *metrics.Metrics) *Resolver {
	return &Resolver{
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  m,
	}
}

// checkID rejects identifiers that are not short digit strings.
func (r *Resolver) checkID(restaurantID string) error {
	if err := r.validate.Var(restaurantID, identifierRule); err != nil {
		return apperr.ErrInvalidTenant
	}
	return nil
}

// Resolve returns the menu table for restaurantID, or a
// *apperr.TenantNotFoundError when the table does not exist.
func (r *Resolver) Resolve(ctx context.Context, restaurantID string) (Table, error) {
	if err := r.checkID(restaurantID); err != nil {
		r.metrics.ObserveTenantLookup(metrics.TenantRejected)
		return Table{}, err
	}

	name := TableName(restaurantID)
	exists, err := r.tableExists(ctx, name)
	if err != nil {
		r.metrics.ObserveTenantLookup(metrics.TenantError)
		return Table{}, fmt.Errorf("probe %s: %w", name, err)
	}
	if !exists {
		r.metrics.ObserveTenantLookup(metrics.TenantMissing)
		return Table{}, &apperr.TenantNotFoundError{Table: name}
	}

	r.metrics.ObserveTenantLookup(metrics.TenantFound)
	return Table{RestaurantID: restaurantID, Name: name}, nil
}

func (r *Resolver) tableExists(ctx context.Context, name string) (bool, error) {
	var query string
	switch r.db.Dialector.Name() {
	case "postgres":
		query = "SELECT count(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?"
	case "sqlite":
		query = "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	default:
		return false, fmt.Errorf("unsupported dialect %q", r.db.Dialector.Name())
	}

	var count int64
	if err := r.db.WithContext(ctx).Raw(query, name).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

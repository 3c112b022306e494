package tenant

import (
	"context"
	"errors"
	"testing"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/internal/testdb"
	"restaurant-menu-api/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableName(t *testing.T) {
	assert.Equal(t, "menu_42", TableName("42"))
}

func TestResolve_ExistingTable(t *testing.T) {
	db := testdb.Open(t)
	testdb.CreateMenuTable(t, db, "42")
	m := metrics.New(prometheus.NewRegistry())
	resolver := NewResolver(db, m)

	table, err := resolver.Resolve(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "42", table.RestaurantID)
	assert.Equal(t, "menu_42", table.Name)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TenantLookups.WithLabelValues(metrics.TenantFound)))
}

func TestResolve_MissingTable(t *testing.T) {
	db := testdb.Open(t)
	m := metrics.New(prometheus.NewRegistry())
	resolver := NewResolver(db, m)

	_, err := resolver.Resolve(context.Background(), "7")
	require.Error(t, err)

	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	var tnf *apperr.TenantNotFoundError
	require.True(t, errors.As(err, &tnf))
	assert.Equal(t, "menu_7", tnf.Table)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TenantLookups.WithLabelValues(metrics.TenantMissing)))
}

func TestResolve_NoCachingBetweenCalls(t *testing.T) {
	db := testdb.Open(t)
	resolver := NewResolver(db, nil)
	ctx := context.Background()

	_, err := resolver.Resolve(ctx, "3")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	table := testdb.CreateMenuTable(t, db, "3")
	_, err = resolver.Resolve(ctx, "3")
	require.NoError(t, err)

	testdb.DropMenuTable(t, db, table)
	_, err = resolver.Resolve(ctx, "3")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestResolve_RejectsUnsafeIdentifiers(t *testing.T) {
	db := testdb.Open(t)
	testdb.CreateMenuTable(t, db, "1")
	resolver := NewResolver(db, nil)

	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "letters", id: "abc"},
		{name: "sql injection", id: "1; DROP TABLE users"},
		{name: "quote", id: `1"`},
		{name: "underscore suffix", id: "1_archive"},
		{name: "negative", id: "-1"},
		{name: "decimal", id: "1.5"},
		{name: "whitespace", id: " 1"},
		{name: "too long", id: "1234567890123456789"},
		{name: "non-ascii digits", id: "١٢"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve(context.Background(), tt.id)
			assert.ErrorIs(t, err, apperr.ErrInvalidTenant)
			assert.False(t, errors.Is(err, apperr.ErrNotFound))
		})
	}

	assert.True(t, db.Migrator().HasTable("users"))
}

func TestResolve_ProbeFailure(t *testing.T) {
	db := testdb.Open(t)
	resolver := NewResolver(db, nil)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = resolver.Resolve(context.Background(), "5")
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
	assert.False(t, errors.Is(err, apperr.ErrInvalidTenant))
}

// Package testdb opens throwaway SQLite databases for tests.
package testdb

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE restaurants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT
	)`,
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT DEFAULT 'user',
		restaurant_id INTEGER
	)`,
}

// Open returns a file-backed SQLite database in t.TempDir() with the users
// and restaurants tables laid out as the deployed schema has them. The
// users table has no phone column; AddPhoneColumn adds it.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	for _, ddl := range schema {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// AddPhoneColumn adds the optional users.phone column.
func AddPhoneColumn(t *testing.T, db *gorm.DB) {
	t.Helper()

	if err := db.Exec("ALTER TABLE users ADD COLUMN phone TEXT").Error; err != nil {
		t.Fatalf("add phone column: %v", err)
	}
}

// CreateMenuTable provisions menu_<restaurantID> the way the external
// provisioning job does.
func CreateMenuTable(t *testing.T, db *gorm.DB, restaurantID string) string {
	t.Helper()

	table := "menu_" + restaurantID
	err := db.Exec(fmt.Sprintf(`CREATE TABLE %s (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL,
		category TEXT,
		available BOOLEAN DEFAULT TRUE
	)`, table)).Error
	if err != nil {
		t.Fatalf("create %s: %v", table, err)
	}
	return table
}

// DropMenuTable removes a menu table.
func DropMenuTable(t *testing.T, db *gorm.DB, table string) {
	t.Helper()

	if err := db.Exec("DROP TABLE " + table).Error; err != nil {
		t.Fatalf("drop %s: %v", table, err)
	}
}

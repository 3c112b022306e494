package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/internal/testdb"
	"restaurant-menu-api/models"
	"restaurant-menu-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	svc := NewService(repository.NewUserRepository(db), repository.NewRestaurantRepository(db))
	svc.now = func() time.Time {
		return time.Date(2026, 10, 16, 9, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	}
	return svc, db
}

func TestCompletenessScore(t *testing.T) {
	tests := []struct {
		name string
		data UserData
		want int
	}{
		{
			name: "name and email only, unassigned role",
			data: UserData{Name: "Ada", Email: "ada@example.com", Role: models.RoleUnassigned},
			want: 50,
		},
		{
			name: "everything present",
			data: UserData{Name: "Ada", Email: "ada@example.com", Phone: "555-0100", Role: models.RoleUser},
			want: 100,
		},
		{
			name: "nothing present",
			data: UserData{Role: models.RoleUnassigned},
			want: 0,
		},
		{
			name: "role only",
			data: UserData{Role: models.RoleAdmin},
			want: 25,
		},
		{
			name: "phone and role",
			data: UserData{Phone: "555-0100", Role: models.RoleUser},
			want: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletenessScore(tt.data)
			assert.Equal(t, tt.want, got)
			assert.Zero(t, got%25)
		})
	}
}

func TestGet_FullProfile(t *testing.T) {
	svc, db := setupService(t)
	testdb.AddPhoneColumn(t, db)

	restaurant := &models.Restaurant{Name: "Trattoria"}
	require.NoError(t, db.Create(restaurant).Error)
	user := &models.User{
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "x",
		Role:         models.RoleAdmin,
		RestaurantID: &restaurant.ID,
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Exec("UPDATE users SET phone = ? WHERE id = ?", "555-0100", user.ID).Error)

	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, UserData{
		ID:           user.ID,
		Name:         "Ada",
		Email:        "ada@example.com",
		Phone:        "555-0100",
		Role:         models.RoleAdmin,
		RestaurantID: restaurant.ID,
	}, got.UserData)
	assert.Equal(t, Context{
		RestaurantName:    "Trattoria",
		LastLogin:         "2026-10-16T07:30:00.000Z",
		AccountStatus:     AccountStatusActive,
		CompletenessScore: 100,
	}, got.ContextData)
}

func TestGet_Fallbacks(t *testing.T) {
	svc, db := setupService(t)

	require.NoError(t, db.Exec(
		"INSERT INTO users (name, email, password, role) VALUES (NULL, ?, ?, NULL)",
		"bare@example.com", "x",
	).Error)
	var id uint
	require.NoError(t, db.Raw("SELECT id FROM users WHERE email = ?", "bare@example.com").Scan(&id).Error)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "", got.UserData.Name)
	assert.Equal(t, "", got.UserData.Phone)
	assert.Equal(t, models.RoleUnassigned, got.UserData.Role)
	assert.Equal(t, uint(0), got.UserData.RestaurantID)
	assert.Equal(t, UnassignedRestaurant, got.ContextData.RestaurantName)
	assert.Equal(t, 25, got.ContextData.CompletenessScore)
}

func TestGet_DanglingRestaurant(t *testing.T) {
	svc, db := setupService(t)

	missing := uint(999)
	user := &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x", Role: models.RoleUnassigned, RestaurantID: &missing}
	require.NoError(t, db.Create(user).Error)

	got, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, uint(999), got.UserData.RestaurantID)
	assert.Equal(t, UnassignedRestaurant, got.ContextData.RestaurantName)
	assert.Equal(t, 50, got.ContextData.CompletenessScore)
}

func TestGet_UserNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGet_DoesNotWrite(t *testing.T) {
	svc, db := setupService(t)

	user := &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.Get(context.Background(), user.ID)
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, *user, stored)
}

type failingRestaurants struct{}

func (failingRestaurants) FindByID(context.Context, uint) (*models.Restaurant, error) {
	return nil, errors.New("connection reset")
}

func TestGet_RestaurantLookupError(t *testing.T) {
	db := testdb.Open(t)
	svc := NewService(repository.NewUserRepository(db), failingRestaurants{})

	rid := uint(1)
	user := &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "x", RestaurantID: &rid}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.Get(context.Background(), user.ID)
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
}

// Package profile assembles the authenticated user's profile view.
package profile

import (
	"context"
	"errors"
	"time"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"
	"restaurant-menu-api/repository"
)

const (
	// UnassignedRestaurant names the restaurant of users without one.
	UnassignedRestaurant = "Unassigned"
	AccountStatusActive  = "active"

	fieldWeight = 25
)

// UserData is the user row after fallbacks; absent values are empty
// strings, role "unassigned" and restaurant 0.
type UserData struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	RestaurantID uint   `json:"restaurant_id"`
}

// Context holds the values derived for the profile view.
type Context struct {
	RestaurantName    string `json:"restaurant_name"`
	LastLogin         string `json:"last_login"`
	AccountStatus     string `json:"account_status"`
	CompletenessScore int    `json:"completeness_score"`
}

// Profile is the body returned by GET /api/profile.
type Profile struct {
	UserData    UserData `json:"userData"`
	ContextData Context  `json:"contextData"`
}

type Service struct {
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	now         func() time.Time
}

func NewService(users repository.UserRepository, restaurants repository.RestaurantRepository) *Service {
	return &Service{
		users:       users,
		restaurants: restaurants,
		now:         time.Now,
	}
}

// Get reads the user and their restaurant; it never writes.
func (s *Service) Get(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := userData(user)

	restaurantName, err := s.restaurantName(ctx, data.RestaurantID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		UserData: data,
		ContextData: Context{
			RestaurantName:    restaurantName,
			LastLogin:         s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
			AccountStatus:     AccountStatusActive,
			CompletenessScore: CompletenessScore(data),
		},
	}, nil
}

func (s *Service) restaurantName(ctx context.Context, id uint) (string, error) {
	if id == 0 {
		return UnassignedRestaurant, nil
	}
	restaurant, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return UnassignedRestaurant, nil
		}
		return "", err
	}
	return restaurant.Name, nil
}

func userData(user *models.User) UserData {
	data := UserData{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
	if data.Role == "" {
		data.Role = models.RoleUnassigned
	}
	if user.RestaurantID != nil {
		data.RestaurantID = *user.RestaurantID
	}
	return data
}

// CompletenessScore awards 25 points each for a name, an email, a phone
// number and an assigned role.
func CompletenessScore(data UserData) int {
	score := 0
	if data.Name != "" {
		score += fieldWeight
	}
	if data.Email != "" {
		score += fieldWeight
	}
	if data.Phone != "" {
		score += fieldWeight
	}
	if data.Role != "" && data.Role != models.RoleUnassigned {
		score += fieldWeight
	}
	return score
}

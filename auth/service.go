package auth

import (
	"context"
	"errors"
	"fmt"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"
	"restaurant-menu-api/repository"
)

// PublicUser is the part of a user returned to clients.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Service struct {
	users  repository.UserRepository
	tokens *TokenService
	hasher *Hasher
}

func NewService(users repository.UserRepository, tokens *TokenService, hasher *Hasher) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// Login checks the credentials and issues a token. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  toPublic(user),
	}, nil
}

// Register creates an account. The role defaults to models.RoleUser.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*PublicUser, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.ErrConflict
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("register %s: %w", in.Email, err)
	}

	public := toPublic(user)
	return &public, nil
}

func toPublic(user *models.User) PublicUser {
	return PublicUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

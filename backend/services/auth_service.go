package services

import (
	"context"
	"errors"

	"horsera/backend/config"
	"horsera/backend/models"
	"horsera/backend/repository"
	"horsera/backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and login for both account kinds. Tokens carry
// {username, role}; the two roles differ only in that claim.
type AuthService struct {
	store *repository.Store
	cfg   *config.Config
}

func NewAuthService(store *repository.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

func (s *AuthService) SignupUser(ctx context.Context, username, password string) (string, error) {
	_, err := s.store.Users.FindByUsername(ctx, username)
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username:         username,
		Password:         string(hash),
		PurchasedCourses: []primitive.ObjectID{},
		CompletedLessons: map[string][]primitive.ObjectID{},
	}
	if err := s.store.Users.Insert(ctx, user); err != nil {
		return "", err
	}

	return utils.GenerateJWTToken(username, utils.RoleUser, s.cfg)
}

func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.Users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWTToken(username, utils.RoleUser, s.cfg)
}

func (s *AuthService) SignupAdmin(ctx context.Context, username, password string) (string, error) {
	_, err := s.store.Admins.FindByUsername(ctx, username)
	if err == nil {
		return "", ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	admin := &models.Admin{Username: username, Password: string(hash)}
	if err := s.store.Admins.Insert(ctx, admin); err != nil {
		return "", err
	}

	return utils.GenerateJWTToken(username, utils.RoleAdmin, s.cfg)
}

func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	admin, err := s.store.Admins.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWTToken(username, utils.RoleAdmin, s.cfg)
}

// UserExists reports whether a user account is still on record.
func (s *AuthService) UserExists(ctx context.Context, username string) (bool, error) {
	_, err := s.store.Users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

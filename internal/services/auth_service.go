package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/repository"
)

const (
	MinPasswordLen = 8
)

type AuthService struct {
	Users     *repository.AuthRepository
	Customer  *repository.CustomerRepository // for auto-create
	Validator EmailValidator
}

func NewAuthService(u *repository.AuthRepository, cr *repository.CustomerRepository, v EmailValidator) *AuthService {
	return &AuthService{Users: u, Customer: cr, Validator: v}
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// RegisterPublic creates a user with role "user" AND creates the customer row.
func (s *AuthService) RegisterPublic(ctx context.Context, email, password string, firstName, lastName *string) (int64, error) {
	if err := s.Validator.Validate(ctx, email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	authID, err := s.Users.CreateUser(ctx, email, string(hash), "user")
	if err != nil {
		return 0, err
	}
	if _, err := s.Customer.Create(ctx, authID, email, firstName, lastName); err != nil {
		// caller decides what to do with a half-created account
		return authID, err
	}
	return authID, nil
}

// Login authenticates using email + password and returns the user (without passwordhash).
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Auth, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return nil, errors.New("invalid credentials")
	}
	if u.DeletedAt != nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	// zero out password before returning
	u.PasswordHash = ""
	return u, nil
}

package services

import (
	"context"
	"errors"
	"regexp"
)

type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// LocalValidator is the default format-only check; the external reputation
// validator replaces it when USE_EMAIL_REPUTATION is on.
type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (LocalValidator) Validate(_ context.Context, email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

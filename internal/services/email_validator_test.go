package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalValidator(t *testing.T) {
	v := NewLocalValidator()
	ctx := context.Background()

	valid := []string{
		"pat@example.com",
		"pat.moeller+orders@five-star.example",
		"p_m%99@sub.example.co",
	}
	for _, email := range valid {
		assert.NoError(t, v.Validate(ctx, email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"pat@",
		"pat@example",
		"pat example@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, v.Validate(ctx, email), email)
	}
}

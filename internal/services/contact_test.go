package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGuest() Contact {
	return Contact{
		Guest:     true,
		Email:     "pat@example.com",
		FirstName: "Pat",
		LastName:  "Moeller",
		Phone:     "(856) 555-0199",
	}
}

func TestValidateGuestContact(t *testing.T) {
	assert.NoError(t, ValidateGuestContact(validGuest()))
}

func TestValidateGuestContactFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Contact)
		field  string
	}{
		{"bad email", func(c *Contact) { c.Email = "not-an-email" }, "email"},
		{"empty email", func(c *Contact) { c.Email = "" }, "email"},
		{"empty first name", func(c *Contact) { c.FirstName = "  " }, "first_name"},
		{"empty last name", func(c *Contact) { c.LastName = "" }, "last_name"},
		{"short phone", func(c *Contact) { c.Phone = "123" }, "phone"},
		{"phone with no digits", func(c *Contact) { c.Phone = "call me" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validGuest()
			tt.mutate(&c)

			err := ValidateGuestContact(c)
			require.Error(t, err)

			var fe FieldErrors
			require.ErrorAs(t, err, &fe)
			assert.Contains(t, fe, tt.field)
		})
	}
}

func TestValidateGuestContactCollectsAllFields(t *testing.T) {
	err := ValidateGuestContact(Contact{Guest: true})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Len(t, fe, 4)
	assert.Equal(t, "invalid fields: email, first_name, last_name, phone", err.Error())
}

package services

import (
	"fmt"
	"sort"
	"strings"
)

// Contact is the resolved identity an order is attributed to. Members carry
// their customer id and are loyalty-eligible; guests are whatever the contact
// form collected. The branch itself keeps no other state.
type Contact struct {
	CustomerID *int64
	Guest      bool
	Email      string
	FirstName  string
	LastName   string
	Phone      string
}

// FieldErrors maps a form field to its inline validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

const minPhoneDigits = 7

// ValidateGuestContact checks the guest checkout form. Submission is blocked
// until every field passes; an order from an invalid form must never reach
// the order repository.
func ValidateGuestContact(c Contact) error {
	fe := FieldErrors{}
	if !emailRegex.MatchString(c.Email) {
		fe["email"] = "a valid email is required"
	}
	if strings.TrimSpace(c.FirstName) == "" {
		fe["first_name"] = "first name is required"
	}
	if strings.TrimSpace(c.LastName) == "" {
		fe["last_name"] = "last name is required"
	}
	if phoneDigits(c.Phone) < minPhoneDigits {
		fe["phone"] = fmt.Sprintf("phone must have at least %d digits", minPhoneDigits)
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

func phoneDigits(phone string) int {
	n := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

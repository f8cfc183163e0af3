package abstractapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const endpoint = "https://emailreputation.abstractapi.com/v1/"

// ReputationValidator rejects registrations from disposable, role-based, or
// low-reputation addresses. It plugs in behind services.EmailValidator when
// USE_EMAIL_REPUTATION is enabled; otherwise the local format check runs.
type ReputationValidator struct {
	apiKey string
	client *http.Client
}

func NewReputationValidator(apiKey string) (*ReputationValidator, error) {
	if apiKey == "" {
		return nil, errors.New("abstract email api key not set")
	}
	return &ReputationValidator{
		apiKey: apiKey,
		client: &http.Client{Timeout: 5 * time.Second},
	}, nil
}

type reputationResponse struct {
	EmailReputation string `json:"email_reputation"` // LOW, MEDIUM, HIGH
	IsDisposable    bool   `json:"is_disposable_email"`
	IsRoleEmail     bool   `json:"is_role_email"`
}

func (v *ReputationValidator) Validate(ctx context.Context, email string) error {
	u, _ := url.Parse(endpoint)
	q := u.Query()
	q.Set("api_key", v.apiKey)
	q.Set("email", email)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email reputation service error: %s", resp.Status)
	}

	var out reputationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}

	switch {
	case out.IsDisposable:
		return errors.New("disposable email is not allowed")
	case out.IsRoleEmail:
		return errors.New("role-based email is not allowed")
	case out.EmailReputation == "LOW":
		return errors.New("email reputation is too low")
	}
	return nil
}

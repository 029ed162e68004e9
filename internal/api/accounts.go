package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Max-glbt/Medi4ll/internal/models"
)

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountType string `json:"type_compte,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if err := c.send(ctx, "POST", "/register/", "", req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login authenticates against the backend and returns the identity plus the
// upstream session cookie to replay on later authenticated calls.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*models.Identity, string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, "", fmt.Errorf("login: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login/", bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("login: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, "", fmt.Errorf("login: %w", ErrUnauthorized)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", &StatusError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	var payload struct {
		User models.Identity `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("login: decode response: %w", err)
	}
	return &payload.User, sessionFromCookies(resp.Cookies()), nil
}

func (c *Client) Logout(ctx context.Context, session string) error {
	if err := c.send(ctx, "POST", "/logout/", session, nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (c *Client) CheckAdmin(ctx context.Context, session string) (bool, error) {
	var payload struct {
		IsAdmin bool `json:"is_admin"`
	}
	if err := c.get(ctx, "/check-admin/", session, &payload); err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	return payload.IsAdmin, nil
}

func (c *Client) GetUserProfile(ctx context.Context, session string) (*models.Client, error) {
	var profile models.Client
	if err := c.get(ctx, "/user/profile/", session, &profile); err != nil {
		return nil, fmt.Errorf("get user profile: %w", err)
	}
	return &profile, nil
}

func (c *Client) UpdateUserProfile(ctx context.Context, session string, profile models.Client) (*models.Client, error) {
	var updated models.Client
	if err := c.send(ctx, "PUT", "/user/profile/", session, profile, &updated); err != nil {
		return nil, fmt.Errorf("update user profile: %w", err)
	}
	return &updated, nil
}

func (c *Client) GetProfessionalProfile(ctx context.Context, session string) (*models.Professional, error) {
	var profile models.Professional
	if err := c.get(ctx, "/professionnel/profile/", session, &profile); err != nil {
		return nil, fmt.Errorf("get professional profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfessionalSettings only touches the two fields the dashboard edits.
func (c *Client) UpdateProfessionalSettings(ctx context.Context, session, fee string, acceptsTeleconsult bool) (*models.Professional, error) {
	payload := map[string]any{
		"tarif_consultation":       fee,
		"accepte_teleconsultation": acceptsTeleconsult,
	}
	var updated models.Professional
	if err := c.send(ctx, "PUT", "/professionnel/profile/", session, payload, &updated); err != nil {
		return nil, fmt.Errorf("update professional settings: %w", err)
	}
	return &updated, nil
}

func (c *Client) ListMyOffices(ctx context.Context, session string) ([]models.Office, error) {
	var offices []models.Office
	if err := c.get(ctx, "/professionnel/cabinets/", session, &offices); err != nil {
		return nil, fmt.Errorf("list my offices: %w", err)
	}
	return offices, nil
}

func (c *Client) CreateOffice(ctx context.Context, session string, input models.OfficeInput) error {
	if err := c.send(ctx, "POST", "/professionnel/cabinets/", session, input, nil); err != nil {
		return fmt.Errorf("create office: %w", err)
	}
	return nil
}

func (c *Client) UpdateOffice(ctx context.Context, session string, id int64, input models.OfficeInput) error {
	path := fmt.Sprintf("/professionnel/cabinets/%d/", id)
	if err := c.send(ctx, "PUT", path, session, input, nil); err != nil {
		return fmt.Errorf("update office: %w", err)
	}
	return nil
}

func (c *Client) DeleteOffice(ctx context.Context, session string, id int64) error {
	path := fmt.Sprintf("/professionnel/cabinets/%d/", id)
	if err := c.send(ctx, "DELETE", path, session, nil, nil); err != nil {
		return fmt.Errorf("delete office: %w", err)
	}
	return nil
}

func (c *Client) ListAvailabilityRules(ctx context.Context, session string) ([]models.AvailabilityRule, error) {
	var rules []models.AvailabilityRule
	if err := c.get(ctx, "/professionnel/disponibilites/", session, &rules); err != nil {
		return nil, fmt.Errorf("list availability rules: %w", err)
	}
	return rules, nil
}

func (c *Client) CreateAvailabilityRule(ctx context.Context, session string, input models.AvailabilityRuleInput) error {
	if err := c.send(ctx, "POST", "/professionnel/disponibilites/", session, input, nil); err != nil {
		return fmt.Errorf("create availability rule: %w", err)
	}
	return nil
}

func (c *Client) UpdateAvailabilityRule(ctx context.Context, session string, id int64, input models.AvailabilityRuleInput) error {
	path := fmt.Sprintf("/professionnel/disponibilites/%d/", id)
	if err := c.send(ctx, "PUT", path, session, input, nil); err != nil {
		return fmt.Errorf("update availability rule: %w", err)
	}
	return nil
}

func (c *Client) DeleteAvailabilityRule(ctx context.Context, session string, id int64) error {
	path := fmt.Sprintf("/professionnel/disponibilites/%d/", id)
	if err := c.send(ctx, "DELETE", path, session, nil, nil); err != nil {
		return fmt.Errorf("delete availability rule: %w", err)
	}
	return nil
}

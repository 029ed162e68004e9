package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Max-glbt/Medi4ll/internal/models"
)

// ListProfessionals returns the full public directory; filtering happens
// client-side.
func (c *Client) ListProfessionals(ctx context.Context) ([]models.Professional, error) {
	var professionals []models.Professional
	if err := c.get(ctx, "/professionnels/", "", &professionals); err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return professionals, nil
}

func (c *Client) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	var specialties []models.Specialty
	if err := c.get(ctx, "/specialites/", "", &specialties); err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	return specialties, nil
}

func (c *Client) ListOffices(ctx context.Context) ([]models.Office, error) {
	var offices []models.Office
	if err := c.get(ctx, "/cabinets/", "", &offices); err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	return offices, nil
}

// AvailableSlots returns the bookable start times for a professional on a
// date, optionally narrowed to one office. Slot computation is a backend
// responsibility.
func (c *Client) AvailableSlots(ctx context.Context, professionalID int64, date string, officeID int64) ([]string, error) {
	query := url.Values{}
	query.Set("date", date)
	if officeID > 0 {
		query.Set("cabinet_id", fmt.Sprintf("%d", officeID))
	}

	var payload struct {
		Slots []string `json:"slots"`
	}
	path := fmt.Sprintf("/professionnels/%d/disponibilites/?%s", professionalID, query.Encode())
	if err := c.get(ctx, path, "", &payload); err != nil {
		return nil, fmt.Errorf("available slots: %w", err)
	}
	return payload.Slots, nil
}

// Admin-only management of the professional directory.

func (c *Client) ManageListProfessionals(ctx context.Context, session string) ([]models.ManagedProfessional, error) {
	var professionals []models.ManagedProfessional
	if err := c.get(ctx, "/professionnels/manage/", session, &professionals); err != nil {
		return nil, fmt.Errorf("manage list professionals: %w", err)
	}
	return professionals, nil
}

func (c *Client) CreateProfessional(ctx context.Context, session string, input models.ManagedProfessional) error {
	if err := c.send(ctx, "POST", "/professionnels/manage/", session, input, nil); err != nil {
		return fmt.Errorf("create professional: %w", err)
	}
	return nil
}

func (c *Client) UpdateProfessional(ctx context.Context, session string, id int64, input models.ManagedProfessional) error {
	path := fmt.Sprintf("/professionnels/manage/%d/", id)
	if err := c.send(ctx, "PUT", path, session, input, nil); err != nil {
		return fmt.Errorf("update professional: %w", err)
	}
	return nil
}

func (c *Client) DeleteProfessional(ctx context.Context, session string, id int64) error {
	path := fmt.Sprintf("/professionnels/manage/%d/", id)
	if err := c.send(ctx, "DELETE", path, session, nil, nil); err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	return nil
}

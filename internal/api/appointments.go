package api

import (
	"context"
	"fmt"

	"github.com/Max-glbt/Medi4ll/internal/models"
)

func (c *Client) ListMyAppointments(ctx context.Context, session string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.get(ctx, "/rendez-vous/", session, &appointments); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// ListProfessionalAppointments also doubles as the "is this account a
// professional" probe: the backend rejects plain patients.
func (c *Client) ListProfessionalAppointments(ctx context.Context, session string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.get(ctx, "/rendez-vous/professionnel/", session, &appointments); err != nil {
		return nil, fmt.Errorf("list professional appointments: %w", err)
	}
	return appointments, nil
}

func (c *Client) CreateAppointment(ctx context.Context, session string, req models.AppointmentRequest) error {
	if err := c.send(ctx, "POST", "/rendez-vous/create/", session, req, nil); err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, session string, id int64, status string) error {
	payload := map[string]string{"statut": status}
	path := fmt.Sprintf("/rendez-vous/%d/statut/", id)
	if err := c.send(ctx, "PUT", path, session, payload, nil); err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}
	return nil
}

func (c *Client) AdminListAppointments(ctx context.Context, session string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.get(ctx, "/admin/rendez-vous/", session, &appointments); err != nil {
		return nil, fmt.Errorf("admin list appointments: %w", err)
	}
	return appointments, nil
}

func (c *Client) AdminDeleteAppointment(ctx context.Context, session string, id int64) error {
	path := fmt.Sprintf("/admin/rendez-vous/%d/", id)
	if err := c.send(ctx, "DELETE", path, session, nil, nil); err != nil {
		return fmt.Errorf("admin delete appointment: %w", err)
	}
	return nil
}

func (c *Client) AdminListClients(ctx context.Context, session string) ([]models.Client, error) {
	var clients []models.Client
	if err := c.get(ctx, "/admin/clients/", session, &clients); err != nil {
		return nil, fmt.Errorf("admin list clients: %w", err)
	}
	return clients, nil
}

func (c *Client) AdminDeleteClient(ctx context.Context, session string, id int64) error {
	path := fmt.Sprintf("/admin/clients/%d/", id)
	if err := c.send(ctx, "DELETE", path, session, nil, nil); err != nil {
		return fmt.Errorf("admin delete client: %w", err)
	}
	return nil
}

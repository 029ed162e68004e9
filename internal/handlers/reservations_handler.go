package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/calendar"
	"github.com/Max-glbt/Medi4ll/internal/middleware"
	"github.com/Max-glbt/Medi4ll/internal/models"
)

type reservationsAPI interface {
	ListMyAppointments(ctx context.Context, sessionCookie string) ([]models.Appointment, error)
}

type ReservationsHandler struct {
	api reservationsAPI
	now func() time.Time
}

func NewReservationsHandler(apiClient reservationsAPI) *ReservationsHandler {
	return &ReservationsHandler{api: apiClient, now: time.Now}
}

// Show lists the patient's appointments next to a month calendar marking the
// booked days. This is the one page that tells apart the failure causes.
func (h *ReservationsHandler) Show(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	appointments, err := h.api.ListMyAppointments(c.Context(), s.Upstream)
	if err != nil {
		return c.Render("reservations", fiber.Map{
			"Session": s,
			"Error":   reservationsErrorMessage(err),
			"Success": c.Query("succes"),
		}, "layouts/main")
	}

	today := h.now()
	year, month := today.Year(), today.Month()
	if parsed, err := time.Parse("2006-01", c.Query("mois")); err == nil {
		year, month = parsed.Year(), parsed.Month()
	}

	appointmentDates := make(map[string]struct{}, len(appointments))
	for _, appointment := range appointments {
		appointmentDates[appointment.Date] = struct{}{}
	}

	return c.Render("reservations", fiber.Map{
		"Session":      s,
		"Appointments": appointments,
		"Cells":        calendar.MonthGrid(year, month, appointmentDates, today),
		"Headers":      calendar.WeekdayHeaders(),
		"MonthLabel":   monthLabel(month, year),
		"PrevMonth":    time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0).Format("2006-01"),
		"NextMonth":    time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0).Format("2006-01"),
		"Success":      c.Query("succes"),
	}, "layouts/main")
}

func reservationsErrorMessage(err error) string {
	switch {
	case isUnavailable(err):
		return "Le serveur est injoignable, vérifiez votre connexion"
	case isUnauthorized(err):
		return "Votre session a expiré, veuillez vous reconnecter"
	default:
		return "Erreur lors du chargement des rendez-vous"
	}
}

var monthNames = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

func monthLabel(month time.Month, year int) string {
	return fmt.Sprintf("%s %d", monthNames[int(month)-1], year)
}

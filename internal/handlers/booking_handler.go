package handlers

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/middleware"
	"github.com/Max-glbt/Medi4ll/internal/models"
)

type bookingAPI interface {
	AvailableSlots(ctx context.Context, professionalID int64, date string, officeID int64) ([]string, error)
	CreateAppointment(ctx context.Context, sessionCookie string, req models.AppointmentRequest) error
}

type selectionReader interface {
	LoadSelection(ctx context.Context, browserID string) (*models.Professional, error)
}

type geocoder interface {
	Locate(ctx context.Context, address string) (float64, float64)
}

type BookingHandler struct {
	api      bookingAPI
	stash    selectionReader
	geocoder geocoder
}

func NewBookingHandler(apiClient bookingAPI, selectionStash selectionReader, geo geocoder) *BookingHandler {
	return &BookingHandler{api: apiClient, stash: selectionStash, geocoder: geo}
}

// Show renders the booking page for the stashed professional: office
// selector, per-date availability slots and the office map.
func (h *BookingHandler) Show(c *fiber.Ctx) error {
	professional, ok := h.selectedProfessional(c)
	if !ok {
		return c.Redirect("/prise-rdv", fiber.StatusSeeOther)
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	office := professional.FirstOffice()
	if officeID := parseID(c.Query("cabinet")); officeID > 0 {
		if selected := professional.OfficeByID(officeID); selected != nil {
			office = selected
		}
	}

	var officeID int64
	latitude, longitude := 0.0, 0.0
	if office != nil {
		officeID = office.ID
		address := fmt.Sprintf("%s, %s %s", office.Address, office.PostalCode, office.City)
		latitude, longitude = h.geocoder.Locate(c.Context(), address)
	}

	slots, err := h.api.AvailableSlots(c.Context(), professional.ID, date, officeID)
	errorMessage := c.Query("erreur")
	if err != nil {
		slots = nil
		errorMessage = "Erreur lors du chargement des disponibilités"
	}

	return c.Render("booking", fiber.Map{
		"Session":      middleware.CurrentSession(c),
		"Professional": professional,
		"Office":       office,
		"Date":         date,
		"MinDate":      time.Now().Format("2006-01-02"),
		"Slots":        slots,
		"Latitude":     latitude,
		"Longitude":    longitude,
		"Error":        errorMessage,
		"Success":      c.Query("succes"),
	}, "layouts/main")
}

// Confirm validates the form locally, then submits the appointment. The
// backend re-checks everything authoritatively.
func (h *BookingHandler) Confirm(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	if s == nil {
		return c.Redirect("/?mode=login", fiber.StatusSeeOther)
	}

	professional, ok := h.selectedProfessional(c)
	if !ok {
		return c.Redirect("/prise-rdv", fiber.StatusSeeOther)
	}

	date := c.FormValue("date")
	startTime := c.FormValue("heure")
	if date == "" || startTime == "" {
		return h.redirectWithError(c, professional.ID, date, "Veuillez sélectionner une date et une heure")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return h.redirectWithError(c, professional.ID, "", "Date invalide")
	}

	mode := c.FormValue("mode", models.ModeInPerson)
	if mode != models.ModeInPerson && mode != models.ModeRemote {
		mode = models.ModeInPerson
	}

	err := h.api.CreateAppointment(c.Context(), s.Upstream, models.AppointmentRequest{
		ProfessionalID: professional.ID,
		OfficeID:       parseID(c.FormValue("cabinet")),
		Date:           date,
		StartTime:      startTime,
		Mode:           mode,
		PatientNotes:   c.FormValue("notes"),
	})
	if err != nil {
		if isUnauthorized(err) {
			return c.Redirect("/?mode=login&erreur=Session+expirée", fiber.StatusSeeOther)
		}
		return h.redirectWithError(c, professional.ID, date, backendMessage(err, "Erreur lors de la création du rendez-vous"))
	}

	return c.Redirect("/reservation?succes=Rendez-vous+confirmé+avec+succès+!", fiber.StatusSeeOther)
}

// A broken stash behaves like a missing one: back to search.
func (h *BookingHandler) selectedProfessional(c *fiber.Ctx) (*models.Professional, bool) {
	professional, err := h.stash.LoadSelection(c.Context(), middleware.CurrentBrowserID(c))
	if err != nil {
		return nil, false
	}
	if professional.ID != parseID(c.Params("id")) {
		return nil, false
	}
	return professional, true
}

func (h *BookingHandler) redirectWithError(c *fiber.Ctx, professionalID int64, date, message string) error {
	target := fmt.Sprintf("/prise-rdv/%d?erreur=%s", professionalID, url.QueryEscape(message))
	if date != "" {
		target += "&date=" + url.QueryEscape(date)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

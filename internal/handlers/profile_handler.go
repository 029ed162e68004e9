package handlers

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/middleware"
	"github.com/Max-glbt/Medi4ll/internal/models"
)

type accountAPI interface {
	GetUserProfile(ctx context.Context, sessionCookie string) (*models.Client, error)
	UpdateUserProfile(ctx context.Context, sessionCookie string, profile models.Client) (*models.Client, error)
	ListMyAppointments(ctx context.Context, sessionCookie string) ([]models.Appointment, error)
}

type practitionerAPI interface {
	ListProfessionalAppointments(ctx context.Context, sessionCookie string) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, sessionCookie string, id int64, status string) error
	GetProfessionalProfile(ctx context.Context, sessionCookie string) (*models.Professional, error)
	UpdateProfessionalSettings(ctx context.Context, sessionCookie, fee string, acceptsTeleconsult bool) (*models.Professional, error)
	ListMyOffices(ctx context.Context, sessionCookie string) ([]models.Office, error)
	CreateOffice(ctx context.Context, sessionCookie string, input models.OfficeInput) error
	UpdateOffice(ctx context.Context, sessionCookie string, id int64, input models.OfficeInput) error
	DeleteOffice(ctx context.Context, sessionCookie string, id int64) error
	ListAvailabilityRules(ctx context.Context, sessionCookie string) ([]models.AvailabilityRule, error)
	CreateAvailabilityRule(ctx context.Context, sessionCookie string, input models.AvailabilityRuleInput) error
	UpdateAvailabilityRule(ctx context.Context, sessionCookie string, id int64, input models.AvailabilityRuleInput) error
	DeleteAvailabilityRule(ctx context.Context, sessionCookie string, id int64) error
}

type ProfileHandler struct {
	accounts     accountAPI
	practitioner practitionerAPI
}

func NewProfileHandler(accounts accountAPI, practitioner practitionerAPI) *ProfileHandler {
	return &ProfileHandler{accounts: accounts, practitioner: practitioner}
}

// weekdaySection groups availability rules for one weekday, sorted by start
// time, for the dashboard's week view.
type weekdaySection struct {
	Weekday int
	Label   string
	Rules   []models.AvailabilityRule
}

// Show renders the dashboard. Whether the account is a professional is
// probed through the professional appointments endpoint, which rejects
// plain patients.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	data := fiber.Map{
		"Session": s,
		"Tab":     activeTab(c.Query("tab")),
		"Error":   c.Query("erreur"),
		"Success": c.Query("succes"),
		"Editing": c.Query("edition") == "1",
	}

	profile, err := h.accounts.GetUserProfile(c.Context(), s.Upstream)
	if err != nil {
		if isUnauthorized(err) {
			return c.Redirect("/?mode=login&erreur=Session+expirée", fiber.StatusSeeOther)
		}
		data["Error"] = "Impossible de charger le profil"
		return c.Render("profile", data, "layouts/main")
	}
	data["Profile"] = profile

	if patientAppointments, err := h.accounts.ListMyAppointments(c.Context(), s.Upstream); err == nil {
		data["PatientAppointments"] = patientAppointments
	}

	proAppointments, err := h.practitioner.ListProfessionalAppointments(c.Context(), s.Upstream)
	if err != nil {
		data["IsProfessional"] = false
		return c.Render("profile", data, "layouts/main")
	}

	data["IsProfessional"] = true
	data["ProfessionalAppointments"] = proAppointments
	if proProfile, err := h.practitioner.GetProfessionalProfile(c.Context(), s.Upstream); err == nil {
		data["ProfessionalProfile"] = proProfile
	}
	if offices, err := h.practitioner.ListMyOffices(c.Context(), s.Upstream); err == nil {
		data["Offices"] = offices
	}
	if rules, err := h.practitioner.ListAvailabilityRules(c.Context(), s.Upstream); err == nil {
		data["Week"] = groupRulesByWeekday(rules)
	}

	return c.Render("profile", data, "layouts/main")
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	updated := models.Client{
		ID:                     s.Identity.ID,
		Username:               s.Identity.Username,
		Email:                  strings.TrimSpace(c.FormValue("email")),
		FirstName:              strings.TrimSpace(c.FormValue("first_name")),
		LastName:               strings.TrimSpace(c.FormValue("last_name")),
		Phone:                  strings.TrimSpace(c.FormValue("telephone")),
		EmergencyPhone:         strings.TrimSpace(c.FormValue("telephone_urgence")),
		Address:                strings.TrimSpace(c.FormValue("adresse_complete")),
		City:                   strings.TrimSpace(c.FormValue("ville")),
		PostalCode:             strings.TrimSpace(c.FormValue("code_postal")),
		Country:                strings.TrimSpace(c.FormValue("pays")),
		NotificationPreference: c.FormValue("preference_notification"),
	}
	if _, err := h.accounts.UpdateUserProfile(c.Context(), s.Upstream, updated); err != nil {
		return h.redirect(c, "profile", "", "Erreur lors de la mise à jour")
	}
	return h.redirect(c, "profile", "Profil mis à jour avec succès", "")
}

func (h *ProfileHandler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	id := parseID(c.Params("id"))
	status := c.FormValue("statut")
	if id == 0 || !models.ValidStatus(status) {
		return h.redirect(c, "rdv-pro", "", "Statut invalide")
	}
	if err := h.practitioner.UpdateAppointmentStatus(c.Context(), s.Upstream, id, status); err != nil {
		return h.redirect(c, "rdv-pro", "", "Erreur lors de la mise à jour du statut")
	}
	return h.redirect(c, "rdv-pro", "Statut mis à jour", "")
}

func (h *ProfileHandler) UpdateSettings(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	fee := strings.TrimSpace(c.FormValue("tarif_consultation"))
	acceptsTeleconsult := c.FormValue("accepte_teleconsultation") == "on"
	if _, err := h.practitioner.UpdateProfessionalSettings(c.Context(), s.Upstream, fee, acceptsTeleconsult); err != nil {
		return h.redirect(c, "pro", "", "Erreur lors de l'enregistrement des paramètres")
	}
	return h.redirect(c, "pro", "Paramètres professionnels enregistrés", "")
}

func (h *ProfileHandler) SaveOffice(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	input := models.OfficeInput{
		Name:       strings.TrimSpace(c.FormValue("nom")),
		Address:    strings.TrimSpace(c.FormValue("adresse")),
		City:       strings.TrimSpace(c.FormValue("ville")),
		PostalCode: strings.TrimSpace(c.FormValue("code_postal")),
		Phone:      strings.TrimSpace(c.FormValue("telephone")),
	}
	if input.Name == "" || input.Address == "" || input.City == "" || input.PostalCode == "" {
		return h.redirect(c, "pro", "", "Veuillez remplir tous les champs du cabinet")
	}

	if id := parseID(c.Params("id")); id > 0 {
		if err := h.practitioner.UpdateOffice(c.Context(), s.Upstream, id, input); err != nil {
			return h.redirect(c, "pro", "", "Erreur lors de la mise à jour du cabinet")
		}
		return h.redirect(c, "pro", "Cabinet mis à jour", "")
	}
	if err := h.practitioner.CreateOffice(c.Context(), s.Upstream, input); err != nil {
		return h.redirect(c, "pro", "", "Erreur lors de l'ajout du cabinet")
	}
	return h.redirect(c, "pro", "Cabinet ajouté", "")
}

func (h *ProfileHandler) DeleteOffice(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	id := parseID(c.Params("id"))
	if id == 0 {
		return h.redirect(c, "pro", "", "Cabinet introuvable")
	}
	if err := h.practitioner.DeleteOffice(c.Context(), s.Upstream, id); err != nil {
		return h.redirect(c, "pro", "", "Erreur lors de la suppression du cabinet")
	}
	return h.redirect(c, "pro", "Cabinet supprimé", "")
}

func (h *ProfileHandler) SaveAvailabilityRule(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	input := models.AvailabilityRuleInput{
		OfficeID:     parseID(c.FormValue("cabinet_id")),
		Weekday:      parseWeekday(c.FormValue("jour_semaine")),
		StartTime:    c.FormValue("heure_debut"),
		EndTime:      c.FormValue("heure_fin"),
		SlotDuration: parsePositiveInt(c.FormValue("duree_creneau"), 30),
	}
	if input.OfficeID == 0 {
		return h.redirect(c, "pro", "", "Veuillez sélectionner un cabinet")
	}
	if !timeBefore(input.StartTime, input.EndTime) {
		return h.redirect(c, "pro", "", "L'heure de fin doit être après l'heure de début")
	}

	if id := parseID(c.Params("id")); id > 0 {
		if err := h.practitioner.UpdateAvailabilityRule(c.Context(), s.Upstream, id, input); err != nil {
			return h.redirect(c, "pro", "", "Erreur lors de la modification")
		}
		return h.redirect(c, "pro", "Disponibilité modifiée avec succès", "")
	}
	if err := h.practitioner.CreateAvailabilityRule(c.Context(), s.Upstream, input); err != nil {
		return h.redirect(c, "pro", "", "Erreur lors de l'ajout de la disponibilité")
	}
	return h.redirect(c, "pro", "Disponibilité ajoutée avec succès", "")
}

func (h *ProfileHandler) DeleteAvailabilityRule(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	id := parseID(c.Params("id"))
	if id == 0 {
		return h.redirect(c, "pro", "", "Disponibilité introuvable")
	}
	if err := h.practitioner.DeleteAvailabilityRule(c.Context(), s.Upstream, id); err != nil {
		return h.redirect(c, "pro", "", "Erreur lors de la suppression")
	}
	return h.redirect(c, "pro", "Disponibilité supprimée avec succès", "")
}

func (h *ProfileHandler) redirect(c *fiber.Ctx, tab, success, errorMessage string) error {
	query := url.Values{}
	query.Set("tab", tab)
	if success != "" {
		query.Set("succes", success)
	}
	if errorMessage != "" {
		query.Set("erreur", errorMessage)
	}
	return c.Redirect("/profil?"+query.Encode(), fiber.StatusSeeOther)
}

func activeTab(tab string) string {
	switch tab {
	case "rdv-patient", "rdv-pro", "pro":
		return tab
	default:
		return "profile"
	}
}

func groupRulesByWeekday(rules []models.AvailabilityRule) []weekdaySection {
	sections := make([]weekdaySection, 7)
	for weekday := range sections {
		sections[weekday] = weekdaySection{Weekday: weekday, Label: models.WeekdayLabel(weekday)}
	}
	for _, rule := range rules {
		if rule.Weekday < 0 || rule.Weekday > 6 {
			continue
		}
		sections[rule.Weekday].Rules = append(sections[rule.Weekday].Rules, rule)
	}
	for weekday := range sections {
		sort.Slice(sections[weekday].Rules, func(i, j int) bool {
			return sections[weekday].Rules[i].StartTime < sections[weekday].Rules[j].StartTime
		})
	}
	return sections
}

package handlers

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/middleware"
	"github.com/Max-glbt/Medi4ll/internal/models"
	"github.com/Max-glbt/Medi4ll/internal/search"
)

type adminAPI interface {
	CheckAdmin(ctx context.Context, sessionCookie string) (bool, error)
	ManageListProfessionals(ctx context.Context, sessionCookie string) ([]models.ManagedProfessional, error)
	CreateProfessional(ctx context.Context, sessionCookie string, input models.ManagedProfessional) error
	UpdateProfessional(ctx context.Context, sessionCookie string, id int64, input models.ManagedProfessional) error
	DeleteProfessional(ctx context.Context, sessionCookie string, id int64) error
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	AdminListAppointments(ctx context.Context, sessionCookie string) ([]models.Appointment, error)
	AdminDeleteAppointment(ctx context.Context, sessionCookie string, id int64) error
	AdminListClients(ctx context.Context, sessionCookie string) ([]models.Client, error)
	AdminDeleteClient(ctx context.Context, sessionCookie string, id int64) error
}

type AdminHandler struct {
	api adminAPI
}

func NewAdminHandler(apiClient adminAPI) *AdminHandler {
	return &AdminHandler{api: apiClient}
}

// Show renders the back office: three independently paginated tabs over
// lists fetched in full.
func (h *AdminHandler) Show(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	// The cookie's admin flag is trusted for routing; the backend still has
	// the last word before the back office renders.
	if isAdmin, err := h.api.CheckAdmin(c.Context(), s.Upstream); err == nil && !isAdmin {
		return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
			"Title":   "Accès refusé",
			"Message": "Accès réservé aux administrateurs",
		}, "layouts/main")
	}

	tab := c.Query("tab", "professionnels")
	if tab != "professionnels" && tab != "rendez-vous" && tab != "clients" {
		tab = "professionnels"
	}

	data := fiber.Map{
		"Session": s,
		"Tab":     tab,
		"Error":   c.Query("erreur"),
		"Success": c.Query("succes"),
	}

	professionals, err := h.api.ManageListProfessionals(c.Context(), s.Upstream)
	if err != nil {
		data["Error"] = "Erreur de chargement des professionnels"
	}
	appointments, err := h.api.AdminListAppointments(c.Context(), s.Upstream)
	if err != nil {
		data["Error"] = "Erreur de chargement des rendez-vous"
	}
	clients, err := h.api.AdminListClients(c.Context(), s.Upstream)
	if err != nil {
		data["Error"] = "Erreur de chargement des clients"
	}
	if specialties, err := h.api.ListSpecialties(c.Context()); err == nil {
		data["Specialties"] = specialties
	}

	page := parsePositiveInt(c.Query("page"), 1)
	switch tab {
	case "rendez-vous":
		paginate(data, appointments, page, "Appointments")
	case "clients":
		paginate(data, clients, page, "Clients")
	default:
		paginate(data, professionals, page, "Professionals")
	}

	if editID := parseID(c.Query("edition")); editID > 0 {
		for _, p := range professionals {
			if p.ID == editID {
				data["Editing"] = p
				break
			}
		}
	} else if c.Query("edition") == "nouveau" {
		data["Editing"] = models.ManagedProfessional{ConsultationFee: 50, ValidationStatus: "VALIDE"}
	}

	return c.Render("admin", data, "layouts/main")
}

func paginate[T any](data fiber.Map, items []T, page int, key string) {
	totalPages := search.TotalPages(len(items), search.PageSize)
	page = search.ClampPage(page, totalPages)
	data[key] = search.PageSlice(items, page, search.PageSize)
	data["Page"] = page
	data["TotalPages"] = totalPages
	data["PageNumbers"] = search.PageNumbers(totalPages, page)
}

// SaveProfessional creates or updates depending on the hidden id field.
func (h *AdminHandler) SaveProfessional(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)

	fee, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("tarif_consultation")), 64)
	if err != nil || fee < 0 {
		return h.redirect(c, "professionnels", "", "Tarif invalide")
	}
	input := models.ManagedProfessional{
		LastName:           strings.TrimSpace(c.FormValue("nom")),
		FirstName:          strings.TrimSpace(c.FormValue("prenom")),
		Email:              strings.TrimSpace(c.FormValue("email")),
		SpecialtyID:        parseID(c.FormValue("specialite")),
		Bio:                c.FormValue("bio"),
		ConsultationFee:    fee,
		AcceptsTeleconsult: c.FormValue("accepte_teleconsultation") == "on",
		ValidationStatus:   c.FormValue("statut_validation"),
	}
	if input.LastName == "" || input.FirstName == "" || input.Email == "" || input.SpecialtyID == 0 {
		return h.redirect(c, "professionnels", "", "Veuillez remplir tous les champs obligatoires")
	}

	if id := parseID(c.FormValue("id")); id > 0 {
		if err := h.api.UpdateProfessional(c.Context(), s.Upstream, id, input); err != nil {
			return h.redirect(c, "professionnels", "", "Erreur de modification")
		}
		return h.redirect(c, "professionnels", "Professionnel modifié", "")
	}
	if err := h.api.CreateProfessional(c.Context(), s.Upstream, input); err != nil {
		return h.redirect(c, "professionnels", "", "Erreur de création")
	}
	return h.redirect(c, "professionnels", "Professionnel créé", "")
}

func (h *AdminHandler) DeleteProfessional(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	id := parseID(c.Params("id"))
	if id == 0 {
		return h.redirect(c, "professionnels", "", "Professionnel introuvable")
	}
	if err := h.api.DeleteProfessional(c.Context(), s.Upstream, id); err != nil {
		return h.redirect(c, "professionnels", "", "Erreur de suppression")
	}
	return h.redirect(c, "professionnels", "Professionnel supprimé", "")
}

func (h *AdminHandler) DeleteAppointment(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	id := parseID(c.Params("id"))
	if id == 0 {
		return h.redirect(c, "rendez-vous", "", "Rendez-vous introuvable")
	}
	if err := h.api.AdminDeleteAppointment(c.Context(), s.Upstream, id); err != nil {
		return h.redirect(c, "rendez-vous", "", "Erreur de suppression")
	}
	return h.redirect(c, "rendez-vous", "Rendez-vous supprimé", "")
}

func (h *AdminHandler) DeleteClient(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	id := parseID(c.Params("id"))
	if id == 0 {
		return h.redirect(c, "clients", "", "Client introuvable")
	}
	if err := h.api.AdminDeleteClient(c.Context(), s.Upstream, id); err != nil {
		return h.redirect(c, "clients", "", backendMessage(err, "Erreur de suppression"))
	}
	return h.redirect(c, "clients", "Client supprimé", "")
}

func (h *AdminHandler) redirect(c *fiber.Ctx, tab, success, errorMessage string) error {
	query := url.Values{}
	query.Set("tab", tab)
	if success != "" {
		query.Set("succes", success)
	}
	if errorMessage != "" {
		query.Set("erreur", errorMessage)
	}
	return c.Redirect("/admin?"+query.Encode(), fiber.StatusSeeOther)
}

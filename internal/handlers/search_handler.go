package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/middleware"
	"github.com/Max-glbt/Medi4ll/internal/models"
	"github.com/Max-glbt/Medi4ll/internal/search"
)

type directoryAPI interface {
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
}

type selectionWriter interface {
	SaveSelection(ctx context.Context, browserID string, p models.Professional) error
}

type SearchHandler struct {
	api   directoryAPI
	stash selectionWriter
}

func NewSearchHandler(apiClient directoryAPI, selectionStash selectionWriter) *SearchHandler {
	return &SearchHandler{api: apiClient, stash: selectionStash}
}

// Show fetches the full directory, runs the filter pipeline and renders one
// page of results.
func (h *SearchHandler) Show(c *fiber.Ctx) error {
	specialties, err := h.api.ListSpecialties(c.Context())
	if err != nil {
		return h.renderError(c, "Erreur lors du chargement des données")
	}
	professionals, err := h.api.ListProfessionals(c.Context())
	if err != nil {
		return h.renderError(c, "Erreur lors du chargement des données")
	}

	filters, ok := parseFilters(c)
	if !ok {
		return h.renderError(c, "Critères de recherche invalides")
	}

	// Pager links carry the criteria fingerprint; a mismatch means a filter
	// changed since the page number was chosen, so start over at page 1.
	page := parsePositiveInt(c.Query("page"), 1)
	if c.Query("f") != filters.Fingerprint() {
		page = 1
	}

	filtered := search.Apply(professionals, filters)
	totalPages := search.TotalPages(len(filtered), search.PageSize)
	page = search.ClampPage(page, totalPages)

	return c.Render("search", fiber.Map{
		"Session":       middleware.CurrentSession(c),
		"Specialties":   specialties,
		"Professionals": search.PageSlice(filtered, page, search.PageSize),
		"TotalResults":  len(filtered),
		"Page":          page,
		"TotalPages":    totalPages,
		"PageNumbers":   search.PageNumbers(totalPages, page),
		"Filters":       filters,
		"Fingerprint":   filters.Fingerprint(),
	}, "layouts/main")
}

// Select stashes the chosen professional so the booking page can show it
// without refetching, then forwards there.
func (h *SearchHandler) Select(c *fiber.Ctx) error {
	id := parseID(c.Params("id"))
	if id == 0 {
		return c.Redirect("/prise-rdv", fiber.StatusSeeOther)
	}

	professionals, err := h.api.ListProfessionals(c.Context())
	if err != nil {
		return h.renderError(c, "Erreur lors du chargement des données")
	}
	for _, p := range professionals {
		if p.ID == id {
			if err := h.stash.SaveSelection(c.Context(), middleware.CurrentBrowserID(c), p); err != nil {
				return h.renderError(c, "Erreur lors de la sélection du professionnel")
			}
			return c.Redirect(fmt.Sprintf("/prise-rdv/%d", id), fiber.StatusSeeOther)
		}
	}
	return c.Redirect("/prise-rdv", fiber.StatusSeeOther)
}

func (h *SearchHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Render("search", fiber.Map{
		"Session":      middleware.CurrentSession(c),
		"Error":        message,
		"Filters":      search.Filters{},
		"Fingerprint":  "",
		"TotalResults": 0,
		"Page":         1,
		"TotalPages":   0,
	}, "layouts/main")
}

func parseFilters(c *fiber.Ctx) (search.Filters, bool) {
	maxFee, ok := parseOptionalFloat(c.Query("prix_max"))
	if !ok {
		return search.Filters{}, false
	}
	return search.Filters{
		Keyword:     c.Query("q"),
		City:        c.Query("ville"),
		SpecialtyID: parseID(c.Query("specialite")),
		MaxFee:      maxFee,
	}, true
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Max-glbt/Medi4ll/internal/models"
	"github.com/Max-glbt/Medi4ll/internal/search"
)

type stubDirectoryAPI struct {
	professionals []models.Professional
	specialties   []models.Specialty
	listErr       error
}

func (s *stubDirectoryAPI) ListProfessionals(_ context.Context) ([]models.Professional, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.professionals, nil
}

func (s *stubDirectoryAPI) ListSpecialties(_ context.Context) ([]models.Specialty, error) {
	return s.specialties, nil
}

type stubSelectionWriter struct {
	browserID string
	saved     *models.Professional
	err       error
}

func (s *stubSelectionWriter) SaveSelection(_ context.Context, browserID string, p models.Professional) error {
	s.browserID = browserID
	s.saved = &p
	return s.err
}

func manyProfessionals(n int) []models.Professional {
	professionals := make([]models.Professional, n)
	for i := range professionals {
		professionals[i] = models.Professional{
			ID:        int64(i + 1),
			LastName:  fmt.Sprintf("Durand%02d", i+1),
			FirstName: "Alex",
			Specialty: models.Specialty{ID: 1, Name: "Cardiologie"},
		}
	}
	return professionals
}

func TestSearchShowPaginatesAtTwenty(t *testing.T) {
	stub := &stubDirectoryAPI{professionals: manyProfessionals(45)}
	handler := NewSearchHandler(stub, &stubSelectionWriter{})

	app := newTestApp()
	app.Get("/prise-rdv", handler.Show)

	fingerprint := search.Filters{}.Fingerprint()
	req := httptest.NewRequest(http.MethodGet, "/prise-rdv?page=2&f="+fingerprint, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := readBody(resp)
	if !strings.Contains(body, "Durand21") {
		t.Fatal("expected page 2 to start at record 21")
	}
	if strings.Contains(body, "Durand19") {
		t.Fatal("page 2 must not contain page 1 records")
	}
	if strings.Contains(body, "Durand41") {
		t.Fatal("page 2 must not contain page 3 records")
	}
	if !strings.Contains(body, "45 professionnel(s)") {
		t.Fatal("expected the total count")
	}
}

func TestSearchShowResetsPageWhenFiltersChange(t *testing.T) {
	stub := &stubDirectoryAPI{professionals: manyProfessionals(45)}
	handler := NewSearchHandler(stub, &stubSelectionWriter{})

	app := newTestApp()
	app.Get("/prise-rdv", handler.Show)

	// The fingerprint belongs to the empty criteria, but a keyword is now
	// set, so the page parameter must be ignored.
	stale := search.Filters{}.Fingerprint()
	req := httptest.NewRequest(http.MethodGet, "/prise-rdv?q=durand&page=3&f="+stale, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	body := readBody(resp)
	if !strings.Contains(body, "Durand01") {
		t.Fatal("expected the first page after a filter change")
	}
	if strings.Contains(body, "Durand41") {
		t.Fatal("expected page 1, not page 3")
	}
}

func TestSearchShowClampsOutOfRangePages(t *testing.T) {
	stub := &stubDirectoryAPI{professionals: manyProfessionals(45)}
	handler := NewSearchHandler(stub, &stubSelectionWriter{})

	app := newTestApp()
	app.Get("/prise-rdv", handler.Show)

	fingerprint := search.Filters{}.Fingerprint()
	req := httptest.NewRequest(http.MethodGet, "/prise-rdv?page=99&f="+fingerprint, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	if body := readBody(resp); !strings.Contains(body, "Durand45") {
		t.Fatal("expected the last page")
	}
}

func TestSearchShowBackendDown(t *testing.T) {
	stub := &stubDirectoryAPI{listErr: errors.New("boom")}
	handler := NewSearchHandler(stub, &stubSelectionWriter{})

	app := newTestApp()
	app.Get("/prise-rdv", handler.Show)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/prise-rdv", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if body := readBody(resp); !strings.Contains(body, "Erreur lors du chargement des données") {
		t.Fatal("expected the load-failure message")
	}
}

func TestSelectStashesProfessionalAndRedirects(t *testing.T) {
	stub := &stubDirectoryAPI{professionals: manyProfessionals(10)}
	stash := &stubSelectionWriter{}
	handler := NewSearchHandler(stub, stash)

	app := newTestApp()
	app.Post("/prise-rdv/:id/selection", withBrowserID("browser-1"), handler.Select)

	resp, err := app.Test(formRequest("/prise-rdv/7/selection", ""))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/prise-rdv/7" {
		t.Fatalf("expected redirect to /prise-rdv/7, got %q", location)
	}
	if stash.browserID != "browser-1" || stash.saved == nil || stash.saved.ID != 7 {
		t.Fatalf("unexpected stash call: browser=%q saved=%+v", stash.browserID, stash.saved)
	}
}

func TestSelectUnknownProfessionalRedirectsBack(t *testing.T) {
	stub := &stubDirectoryAPI{professionals: manyProfessionals(3)}
	handler := NewSearchHandler(stub, &stubSelectionWriter{})

	app := newTestApp()
	app.Post("/prise-rdv/:id/selection", withBrowserID("browser-1"), handler.Select)

	resp, err := app.Test(formRequest("/prise-rdv/99/selection", ""))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if location := resp.Header.Get("Location"); location != "/prise-rdv" {
		t.Fatalf("expected redirect to /prise-rdv, got %q", location)
	}
}

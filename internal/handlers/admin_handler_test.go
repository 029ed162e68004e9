package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Max-glbt/Medi4ll/internal/models"
	"github.com/Max-glbt/Medi4ll/internal/session"
)

type stubAdminAPI struct {
	adminDenied   bool
	professionals []models.ManagedProfessional
	appointments  []models.Appointment
	clients       []models.Client
	specialties   []models.Specialty

	created             *models.ManagedProfessional
	updated             *models.ManagedProfessional
	updatedID           int64
	deletedProfessional int64
	deletedAppointment  int64
	deletedClient       int64
}

func (s *stubAdminAPI) CheckAdmin(_ context.Context, _ string) (bool, error) {
	return !s.adminDenied, nil
}

func (s *stubAdminAPI) ManageListProfessionals(_ context.Context, _ string) ([]models.ManagedProfessional, error) {
	return s.professionals, nil
}

func (s *stubAdminAPI) CreateProfessional(_ context.Context, _ string, input models.ManagedProfessional) error {
	s.created = &input
	return nil
}

func (s *stubAdminAPI) UpdateProfessional(_ context.Context, _ string, id int64, input models.ManagedProfessional) error {
	s.updatedID = id
	s.updated = &input
	return nil
}

func (s *stubAdminAPI) DeleteProfessional(_ context.Context, _ string, id int64) error {
	s.deletedProfessional = id
	return nil
}

func (s *stubAdminAPI) ListSpecialties(_ context.Context) ([]models.Specialty, error) {
	return s.specialties, nil
}

func (s *stubAdminAPI) AdminListAppointments(_ context.Context, _ string) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *stubAdminAPI) AdminDeleteAppointment(_ context.Context, _ string, id int64) error {
	s.deletedAppointment = id
	return nil
}

func (s *stubAdminAPI) AdminListClients(_ context.Context, _ string) ([]models.Client, error) {
	return s.clients, nil
}

func (s *stubAdminAPI) AdminDeleteClient(_ context.Context, _ string, id int64) error {
	s.deletedClient = id
	return nil
}

func adminSession() *session.Session {
	return &session.Session{Identity: models.Identity{ID: 1, Username: "admin", IsAdmin: true}, Upstream: "sessionid=admin"}
}

func TestAdminShowPaginatesClients(t *testing.T) {
	stub := &stubAdminAPI{}
	for i := 0; i < 45; i++ {
		stub.clients = append(stub.clients, models.Client{ID: int64(i + 1), Username: fmt.Sprintf("client%02d", i+1)})
	}
	handler := NewAdminHandler(stub)

	app := newTestApp()
	app.Get("/admin", withSession(adminSession()), handler.Show)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin?tab=clients&page=3", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := readBody(resp)
	if !strings.Contains(body, "client41") || !strings.Contains(body, "client45") {
		t.Fatal("expected the last page of clients")
	}
	if strings.Contains(body, "client40") {
		t.Fatal("page 3 must not contain page 2 records")
	}
}

func TestAdminShowDeniedByBackendCheck(t *testing.T) {
	handler := NewAdminHandler(&stubAdminAPI{adminDenied: true})

	app := newTestApp()
	app.Get("/admin", withSession(adminSession()), handler.Show)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if body := readBody(resp); !strings.Contains(body, "Accès réservé aux administrateurs") {
		t.Fatal("expected the forbidden message")
	}
}

func TestAdminShowEditPrefillsForm(t *testing.T) {
	stub := &stubAdminAPI{
		professionals: []models.ManagedProfessional{{
			ID: 7, LastName: "Dupont", FirstName: "Marie", Email: "m.dupont@example.com",
			SpecialtyID: 2, ConsultationFee: 60, ValidationStatus: "VALIDE",
		}},
		specialties: []models.Specialty{{ID: 2, Name: "Cardiologie"}},
	}
	handler := NewAdminHandler(stub)

	app := newTestApp()
	app.Get("/admin", withSession(adminSession()), handler.Show)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin?tab=professionnels&edition=7", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	body := readBody(resp)
	if !strings.Contains(body, `value="Dupont"`) || !strings.Contains(body, "m.dupont@example.com") {
		t.Fatal("expected the edit form prefilled")
	}
	if !strings.Contains(body, "Cardiologie") {
		t.Fatal("expected the specialty options")
	}
}

func TestAdminSaveProfessionalCreatesOrUpdates(t *testing.T) {
	stub := &stubAdminAPI{}
	handler := NewAdminHandler(stub)

	app := newTestApp()
	app.Post("/admin/professionnels", withSession(adminSession()), handler.SaveProfessional)

	form := "nom=Dupont&prenom=Marie&email=m.dupont%40example.com&specialite=2&tarif_consultation=60&statut_validation=VALIDE&accepte_teleconsultation=on"
	resp, err := app.Test(formRequest("/admin/professionnels", form))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if stub.created == nil || stub.created.SpecialtyID != 2 || stub.created.ConsultationFee != 60 || !stub.created.AcceptsTeleconsult {
		t.Fatalf("unexpected create payload: %+v", stub.created)
	}
	if location := resp.Header.Get("Location"); !strings.Contains(location, "succes=") {
		t.Fatalf("expected success redirect, got %q", location)
	}

	if _, err := app.Test(formRequest("/admin/professionnels", "id=7&"+form)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if stub.updatedID != 7 || stub.updated == nil {
		t.Fatalf("expected update of professional 7, got id=%d", stub.updatedID)
	}
}

func TestAdminSaveProfessionalRejectsBadFee(t *testing.T) {
	stub := &stubAdminAPI{}
	handler := NewAdminHandler(stub)

	app := newTestApp()
	app.Post("/admin/professionnels", withSession(adminSession()), handler.SaveProfessional)

	form := "nom=Dupont&prenom=Marie&email=m%40example.com&specialite=2&tarif_consultation=gratuit"
	resp, err := app.Test(formRequest("/admin/professionnels", form))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if stub.created != nil {
		t.Fatal("invalid fee must not reach the backend")
	}
	if location := resp.Header.Get("Location"); !strings.Contains(location, "erreur=") {
		t.Fatalf("expected error redirect, got %q", location)
	}
}

func TestAdminDeletes(t *testing.T) {
	stub := &stubAdminAPI{}
	handler := NewAdminHandler(stub)

	app := newTestApp()
	app.Post("/admin/professionnels/:id/supprimer", withSession(adminSession()), handler.DeleteProfessional)
	app.Post("/admin/rendez-vous/:id/supprimer", withSession(adminSession()), handler.DeleteAppointment)
	app.Post("/admin/clients/:id/supprimer", withSession(adminSession()), handler.DeleteClient)

	if _, err := app.Test(formRequest("/admin/professionnels/3/supprimer", "")); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if _, err := app.Test(formRequest("/admin/rendez-vous/4/supprimer", "")); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if _, err := app.Test(formRequest("/admin/clients/5/supprimer", "")); err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	if stub.deletedProfessional != 3 || stub.deletedAppointment != 4 || stub.deletedClient != 5 {
		t.Fatalf("unexpected deletes: %d %d %d", stub.deletedProfessional, stub.deletedAppointment, stub.deletedClient)
	}
}

package handlers

import (
	"context"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/api"
	"github.com/Max-glbt/Medi4ll/internal/middleware"
	"github.com/Max-glbt/Medi4ll/internal/models"
	"github.com/Max-glbt/Medi4ll/internal/session"
)

type authAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*models.Identity, string, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	Logout(ctx context.Context, sessionCookie string) error
}

type LandingHandler struct {
	api      authAPI
	sessions *session.Manager
}

func NewLandingHandler(apiClient authAPI, sessions *session.Manager) *LandingHandler {
	return &LandingHandler{api: apiClient, sessions: sessions}
}

// Show renders the three-mode landing page: action buttons, the login form
// or the registration form.
func (h *LandingHandler) Show(c *fiber.Ctx) error {
	if middleware.CurrentSession(c) != nil {
		return c.Redirect("/home", fiber.StatusSeeOther)
	}

	mode := c.Query("mode", "buttons")
	if mode != "login" && mode != "register" {
		mode = "buttons"
	}
	return c.Render("landing", fiber.Map{
		"Mode":      mode,
		"Error":     c.Query("erreur"),
		"Success":   c.Query("succes"),
		"Email":     "",
		"FirstName": "",
		"LastName":  "",
	}, "layouts/main")
}

func (h *LandingHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	if email == "" || password == "" {
		return h.renderLogin(c, "Veuillez remplir tous les champs", email)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return h.renderLogin(c, "Adresse email invalide", email)
	}

	identity, upstream, err := h.api.Login(c.Context(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return h.renderLogin(c, loginErrorMessage(err), email)
	}

	token, err := h.sessions.Issue(session.Session{Identity: *identity, Upstream: upstream})
	if err != nil {
		return h.renderLogin(c, "Erreur lors de la connexion", email)
	}

	h.setSessionCookie(c, token)
	return c.Redirect("/home", fiber.StatusSeeOther)
}

func (h *LandingHandler) Register(c *fiber.Ctx) error {
	firstName := strings.TrimSpace(c.FormValue("first_name"))
	lastName := strings.TrimSpace(c.FormValue("last_name"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	form := fiber.Map{"FirstName": firstName, "LastName": lastName, "Email": email}
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return h.renderRegister(c, "Veuillez remplir tous les champs", form)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return h.renderRegister(c, "Adresse email invalide", form)
	}
	if len(password) < 6 {
		return h.renderRegister(c, "Le mot de passe doit contenir au moins 6 caractères", form)
	}
	if password != confirm {
		return h.renderRegister(c, "Les mots de passe ne correspondent pas", form)
	}

	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}
	err := h.api.Register(c.Context(), api.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return h.renderRegister(c, registerErrorMessage(err), form)
	}

	// Log the new account straight in, as the registration flow promises.
	identity, upstream, err := h.api.Login(c.Context(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return c.Redirect("/?mode=login&succes=Inscription+réussie,+veuillez+vous+connecter", fiber.StatusSeeOther)
	}
	token, err := h.sessions.Issue(session.Session{Identity: *identity, Upstream: upstream})
	if err != nil {
		return c.Redirect("/?mode=login&succes=Inscription+réussie,+veuillez+vous+connecter", fiber.StatusSeeOther)
	}

	h.setSessionCookie(c, token)
	return c.Redirect("/home", fiber.StatusSeeOther)
}

// Logout tells the backend best-effort, then clears the local session and
// returns to the landing page.
func (h *LandingHandler) Logout(c *fiber.Ctx) error {
	if s := middleware.CurrentSession(c); s != nil {
		_ = h.api.Logout(c.Context(), s.Upstream)
	}
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *LandingHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *LandingHandler) renderLogin(c *fiber.Ctx, message, email string) error {
	return c.Status(fiber.StatusUnprocessableEntity).Render("landing", fiber.Map{
		"Mode":  "login",
		"Error": message,
		"Email": email,
	}, "layouts/main")
}

func (h *LandingHandler) renderRegister(c *fiber.Ctx, message string, form fiber.Map) error {
	data := fiber.Map{"Mode": "register", "Error": message}
	for key, value := range form {
		data[key] = value
	}
	return c.Status(fiber.StatusUnprocessableEntity).Render("landing", data, "layouts/main")
}

func loginErrorMessage(err error) string {
	var statusErr *api.StatusError
	switch {
	case isUnauthorized(err):
		return "Identifiants incorrects"
	case asStatusError(err, &statusErr) && statusErr.Message != "":
		return statusErr.Message
	default:
		return "Erreur lors de la connexion"
	}
}

func registerErrorMessage(err error) string {
	var statusErr *api.StatusError
	if asStatusError(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message
	}
	return "Erreur lors de l'inscription"
}

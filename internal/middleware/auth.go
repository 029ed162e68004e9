package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Max-glbt/Medi4ll/internal/session"
)

// LoadSession decodes the session cookie when present and stores it in
// Locals. It never blocks: public pages render fine without an identity, and
// an unreadable cookie is simply treated as anonymous.
func LoadSession(manager *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(session.CookieName); token != "" {
			if s, err := manager.Decode(token); err == nil {
				c.Locals("session", s)
			}
		}
		return c.Next()
	}
}

// BrowserID guarantees every visitor carries the anonymous browser cookie
// used to key the selected-professional stash.
func BrowserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		browserID := c.Cookies(session.BrowserCookieName)
		if browserID == "" {
			browserID = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     session.BrowserCookieName,
				Value:    browserID,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals("browser_id", browserID)
		return c.Next()
	}
}

// AuthRequired sends anonymous visitors back to the landing page.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentSession(c) == nil {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// AdminRequired gates the back office on the admin flag held in the session.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := CurrentSession(c)
		if s == nil {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		if !s.Identity.IsAdmin {
			return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
				"Title":   "Accès refusé",
				"Message": "Accès réservé aux administrateurs",
			}, "layouts/main")
		}
		return c.Next()
	}
}

func CurrentSession(c *fiber.Ctx) *session.Session {
	if s, ok := c.Locals("session").(*session.Session); ok {
		return s
	}
	return nil
}

func CurrentBrowserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("browser_id").(string); ok {
		return id
	}
	return ""
}

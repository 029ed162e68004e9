package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/session"
	"github.com/Max-glbt/Medi4ll/internal/views"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		Views: views.NewEngine("../../web/templates"),
	})
}

func withSession(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s != nil {
			c.Locals("session", s)
		}
		return c.Next()
	}
}

func withBrowserID(id string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("browser_id", id)
		return c.Next()
	}
}

func formRequest(path string, form string) *http.Request {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func readBody(resp *http.Response) string {
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return string(data)
}

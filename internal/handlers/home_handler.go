package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Max-glbt/Medi4ll/internal/middleware"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) Show(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	return c.Render("home", fiber.Map{
		"Session":     s,
		"DisplayName": s.Identity.DisplayName(),
	}, "layouts/main")
}

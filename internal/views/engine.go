package views

import (
	"github.com/gofiber/template/html/v2"

	"github.com/Max-glbt/Medi4ll/internal/models"
)

// NewEngine builds the template engine with the label helpers the pages use.
func NewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("statusLabel", models.StatusLabel)
	engine.AddFunc("statusBadge", models.StatusBadgeClass)
	engine.AddFunc("modeLabel", models.ModeLabel)
	engine.AddFunc("weekdayLabel", models.WeekdayLabel)
	return engine
}

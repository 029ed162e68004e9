package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Max-glbt/Medi4ll/internal/api"
	"github.com/Max-glbt/Medi4ll/internal/config"
	"github.com/Max-glbt/Medi4ll/internal/geo"
	"github.com/Max-glbt/Medi4ll/internal/handlers"
	"github.com/Max-glbt/Medi4ll/internal/middleware"
	"github.com/Max-glbt/Medi4ll/internal/session"
	"github.com/Max-glbt/Medi4ll/internal/stash"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, rdb *redis.Client) {
	apiClient := api.NewClient(cfg.BackendBaseURL)
	sessions := session.NewManager(cfg.SessionSecret)
	selections := stash.NewStore(rdb)
	geocoder := geo.NewGeocoder(cfg.NominatimURL)

	landingHandler := handlers.NewLandingHandler(apiClient, sessions)
	homeHandler := handlers.NewHomeHandler()
	searchHandler := handlers.NewSearchHandler(apiClient, selections)
	bookingHandler := handlers.NewBookingHandler(apiClient, selections, geocoder)
	reservationsHandler := handlers.NewReservationsHandler(apiClient)
	profileHandler := handlers.NewProfileHandler(apiClient, apiClient)
	adminHandler := handlers.NewAdminHandler(apiClient)

	app.Use(middleware.LoadSession(sessions))
	app.Use(middleware.BrowserID())

	app.Get("/", landingHandler.Show)
	app.Post("/login", landingHandler.Login)
	app.Post("/register", landingHandler.Register)
	app.Post("/logout", landingHandler.Logout)

	app.Get("/prise-rdv", searchHandler.Show)
	app.Post("/prise-rdv/:id/selection", searchHandler.Select)
	app.Get("/prise-rdv/:id", bookingHandler.Show)

	authenticated := app.Group("", middleware.AuthRequired())
	authenticated.Get("/home", homeHandler.Show)
	authenticated.Post("/prise-rdv/:id/confirmer", bookingHandler.Confirm)
	authenticated.Get("/reservation", reservationsHandler.Show)

	profile := authenticated.Group("/profil")
	profile.Get("", profileHandler.Show)
	profile.Post("", profileHandler.UpdateProfile)
	profile.Post("/rendez-vous/:id/statut", profileHandler.UpdateAppointmentStatus)
	profile.Post("/parametres", profileHandler.UpdateSettings)
	profile.Post("/cabinets", profileHandler.SaveOffice)
	profile.Post("/cabinets/:id", profileHandler.SaveOffice)
	profile.Post("/cabinets/:id/supprimer", profileHandler.DeleteOffice)
	profile.Post("/disponibilites", profileHandler.SaveAvailabilityRule)
	profile.Post("/disponibilites/:id", profileHandler.SaveAvailabilityRule)
	profile.Post("/disponibilites/:id/supprimer", profileHandler.DeleteAvailabilityRule)

	admin := app.Group("/admin", middleware.AdminRequired())
	admin.Get("", adminHandler.Show)
	admin.Post("/professionnels", adminHandler.SaveProfessional)
	admin.Post("/professionnels/:id/supprimer", adminHandler.DeleteProfessional)
	admin.Post("/rendez-vous/:id/supprimer", adminHandler.DeleteAppointment)
	admin.Post("/clients/:id/supprimer", adminHandler.DeleteClient)
}

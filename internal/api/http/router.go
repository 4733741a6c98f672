package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/verve-admin/internal/api/http/handlers"
	"github.com/spec-kit/verve-admin/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Reclamations   *handlers.ReclamationsHandler
	Notifications  *handlers.NotificationsHandler
	Sponsorships   *handlers.SponsorshipsHandler
	AccessRequests *handlers.AccessRequestsHandler
	SessionGate    *auth.SessionGate
}

// RegisterRoutes wires HTTP routes. Every /api path sits behind the session
// gate; the paths mirror the dashboard's historical endpoint names.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api", cfg.SessionGate.Handle)

	api.Get("/appuser_api", cfg.Users.List)
	api.Post("/create_user", cfg.Users.Create)
	api.Put("/update_user", cfg.Users.Update)
	api.Delete("/delete_user", cfg.Users.Delete)

	api.Get("/reclamation_api", cfg.Reclamations.List)
	api.Post("/update_reclamation", cfg.Reclamations.Update)
	api.Post("/assign_syndic", cfg.Reclamations.AssignSyndic)

	api.Get("/notification_api", cfg.Notifications.List)
	api.Post("/send_notification", cfg.Notifications.Send)
	api.Delete("/delete_notification", cfg.Notifications.Delete)

	api.Get("/sponsorship_api", cfg.Sponsorships.List)
	api.Delete("/delete_sponsorship", cfg.Sponsorships.Delete)

	api.Get("/access_request_api", cfg.AccessRequests.List)
	api.Put("/update_access_request", cfg.AccessRequests.Update)
	api.Delete("/delete_access_request", cfg.AccessRequests.Delete)
}

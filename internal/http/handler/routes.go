package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"identityapi/internal/http/middleware"
	"identityapi/internal/service"
)

// APIBasePath is the root of every REST resource. The same tree is also
// served under /t/{tenant} for tenant qualified requests.
const APIBasePath = "/api/server/v1"

// Services bundles the facades the HTTP layer routes to.
type Services struct {
	Applications  service.Applications
	Governance    service.Governance
	Notifications service.NotificationSenders
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only decode requests and render results; services own the logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, defaultTenant string, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	registerAPI(app.Group("/t/:tenant"+APIBasePath, middleware.Tenant(defaultTenant)), svc)
	registerAPI(app.Group(APIBasePath, middleware.Tenant(defaultTenant)), svc)
}

func registerAPI(api fiber.Router, svc Services) {
	apps := api.Group("/applications")
	apps.Get("/", ListApplications(svc.Applications))
	apps.Post("/", CreateApplication(svc.Applications))
	apps.Get("/:applicationId", GetApplication(svc.Applications))
	apps.Delete("/:applicationId", DeleteApplication(svc.Applications))

	inbound := apps.Group("/:applicationId/inbound-protocols")
	inbound.Get("/oidc", GetOIDC(svc.Applications))
	inbound.Put("/oidc", PutOIDC(svc.Applications))
	inbound.Delete("/oidc", DeleteOIDC(svc.Applications))
	inbound.Post("/oidc/regenerate-secret", RegenerateSecret(svc.Applications))
	inbound.Post("/oidc/revoke", RevokeClient(svc.Applications))
	inbound.Get("/ws-trust", GetWSTrust(svc.Applications))
	inbound.Put("/ws-trust", PutWSTrust(svc.Applications))

	gov := api.Group("/identity-governance")
	gov.Get("/", ListConnectorCategories(svc.Governance))
	gov.Post("/preferences", GetPreferences(svc.Governance))
	gov.Get("/:categoryId", GetCategory(svc.Governance))
	gov.Get("/:categoryId/connectors", ListConnectors(svc.Governance))
	gov.Get("/:categoryId/connectors/:connectorId", GetConnector(svc.Governance))
	gov.Patch("/:categoryId/connectors/:connectorId", PatchConnector(svc.Governance))

	senders := api.Group("/notification-senders")
	senders.Get("/sms", ListSMSSenders(svc.Notifications))
	senders.Post("/sms", AddSMSSender(svc.Notifications))
	senders.Get("/sms/:senderName", GetSMSSender(svc.Notifications))
	senders.Put("/sms/:senderName", UpdateSMSSender(svc.Notifications))
	senders.Delete("/sms/:senderName", DeleteSMSSender(svc.Notifications))
	senders.Get("/email", ListEmailSenders(svc.Notifications))
	senders.Post("/email", AddEmailSender(svc.Notifications))
	senders.Get("/email/:senderName", GetEmailSender(svc.Notifications))
	senders.Put("/email/:senderName", UpdateEmailSender(svc.Notifications))
	senders.Delete("/email/:senderName", DeleteEmailSender(svc.Notifications))
}

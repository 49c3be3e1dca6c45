// Package router wires the HTTP surface onto the Fiber app.
package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/handler"
	"github.com/enzel-org/BestellDesk/internal/api/middleware"
	"github.com/enzel-org/BestellDesk/internal/api/services"
)

// Handlers bundles the constructed handlers for route registration.
type Handlers struct {
	System      *handler.SystemHandler
	Public      *handler.PublicHandler
	Auth        *handler.AuthHandler
	Bestellung  *handler.BestellungHandler
	Lieferant   *handler.LieferantHandler
	Zeitfenster *handler.ZeitfensterHandler
	Export      *handler.ExportHandler
}

// SetupRoutes registers every route on the app.
//
// Fiber v3 does not run middleware passed inline as route arguments; the
// session gate therefore goes onto the admin group via .Use, and the login
// endpoints live OUTSIDE that group so they stay reachable without a session.
func SetupRoutes(app *fiber.App, h *Handlers, auth *services.AuthService) {
	app.Get("/health", h.System.HandleHealth)

	// Public surface
	app.Get("/", h.Public.HandleHome)
	app.Post("/api/bestellung", h.Public.HandleSubmitBestellung)

	// Login and logout, reachable without a session
	app.Get("/admin", h.Auth.HandleLoginPage)
	app.Post("/admin", h.Auth.HandleLogin)
	app.Get("/admin/logout", h.Auth.HandleLogout)

	// Everything below requires a valid session cookie
	admin := app.Group("/admin")
	admin.Use(middleware.RequireAdmin(auth))

	admin.Get("/bestellungen", h.Bestellung.HandleList)
	admin.Post("/bestellung/loeschen/:id", h.Bestellung.HandleDelete)
	admin.Post("/bestellungen/alle-loeschen", h.Bestellung.HandleDeleteAll)
	admin.Get("/bestellung/bearbeiten/:id", h.Bestellung.HandleEditView)
	admin.Post("/bestellung/bearbeiten/:id", h.Bestellung.HandleEdit)
	admin.Post("/bestellung/zahlung/:id", h.Bestellung.HandleZahlung)

	admin.Get("/lieferanten", h.Lieferant.HandleList)
	admin.Post("/lieferanten", h.Lieferant.HandleCreate)
	admin.Post("/lieferant/aktivieren/:id", h.Lieferant.HandleActivate)
	admin.Post("/lieferant/loeschen/:id", h.Lieferant.HandleDelete)
	admin.Get("/lieferant/bearbeiten/:id", h.Lieferant.HandleEditView)
	admin.Post("/lieferant/bearbeiten/:id", h.Lieferant.HandleEdit)
	admin.Get("/lieferant/:id/speisen", h.Lieferant.HandleSpeisenList)
	admin.Post("/lieferant/:id/speisen", h.Lieferant.HandleSpeiseCreate)
	admin.Post("/speise/loeschen/:id", h.Lieferant.HandleSpeiseDelete)
	admin.Get("/lieferant/:id/kategorien", h.Lieferant.HandleKategorienList)
	admin.Post("/lieferant/:id/kategorien", h.Lieferant.HandleKategorieCreate)
	admin.Post("/kategorie/bearbeiten/:id", h.Lieferant.HandleKategorieEdit)
	admin.Post("/kategorie/loeschen/:id", h.Lieferant.HandleKategorieDelete)

	admin.Get("/zeitfenster", h.Zeitfenster.HandleView)
	admin.Post("/zeitfenster", h.Zeitfenster.HandleSet)

	admin.Get("/export", h.Export.HandleExport)
}

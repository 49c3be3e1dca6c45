// Package middleware contains the Fiber middleware for the admin surface.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/logger"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "bd_session"

// SessionLocalsKey is the Locals key under which RequireAdmin stores the
// verified session.
const SessionLocalsKey = "session"

// RequireAdmin gates the admin routes. Requests without a valid, unexpired
// session cookie are redirected to the login page; everything else proceeds
// with the session available in Locals.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c fiber.Ctx) error {
		session, err := auth.VerifySession(c.Cookies(SessionCookieName))
		if err != nil {
			logger.WithRequest(c).Debug("Zugriff ohne gültige Sitzung, weiter zur Anmeldung")
			return c.Redirect().Status(fiber.StatusSeeOther).To("/admin")
		}

		c.Locals(SessionLocalsKey, session)
		return c.Next()
	}
}

// SessionFromLocals returns the session stored by RequireAdmin, or nil.
func SessionFromLocals(c fiber.Ctx) *services.Session {
	if session, ok := c.Locals(SessionLocalsKey).(*services.Session); ok {
		return session
	}
	return nil
}

package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/enzel-org/BestellDesk/internal/api/dto"
	"github.com/enzel-org/BestellDesk/internal/api/middleware"
	"github.com/enzel-org/BestellDesk/internal/api/services"
	"github.com/enzel-org/BestellDesk/internal/common"
	"github.com/enzel-org/BestellDesk/internal/global"
	"github.com/enzel-org/BestellDesk/internal/logger"
)

// AuthHandler serves the admin login and logout endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleLoginPage answers GET /admin. When a valid session cookie is present
// the response says so; the login form itself is the frontend's concern.
func (h *AuthHandler) HandleLoginPage(c fiber.Ctx) error {
	session, err := h.auth.VerifySession(c.Cookies(middleware.SessionCookieName))
	if err == nil {
		return JSONResponse(c, common.StatusOK, fiber.Map{
			"angemeldet":   true,
			"benutzername": session.Benutzername,
			"seit":         session.Seit.UnixMilli(),
		})
	}
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"angemeldet": false,
	})
}

// HandleLogin answers POST /admin with the login form fields benutzername
// and passwort. A failed check re-renders the login state with the generic
// message and never reveals which part was wrong.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	input := dto.LoginInput{
		Benutzername: c.FormValue("benutzername"),
		Passwort:     c.FormValue("passwort"),
	}

	if err := global.Validate.Struct(&input); err != nil {
		return HandleError(c, common.ErrInvalidCredentials)
	}

	token, err := h.auth.Login(c.Context(), &input)
	if err != nil {
		logger.WithRequest(c).WithField("benutzername", input.Benutzername).Warn("Fehlgeschlagene Anmeldung")
		return HandleError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.auth.SessionTTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return RedirectAfterForm(c, "/admin/bestellungen")
}

// HandleLogout answers GET /admin/logout: the session cookie is cleared and
// the caller lands back on the login page.
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return RedirectAfterForm(c, "/admin")
}

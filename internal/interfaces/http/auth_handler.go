package http

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
)

const stateCookie = "oauth_state"

// AuthHandler maneja el login con Google y la verificación de tokens.
type AuthHandler struct {
	uc          *auth.AuthUseCase
	callbackURL string
	secure      bool
}

// NewAuthHandler construye el handler de auth. callbackURL puede ser relativa a la petición.
func NewAuthHandler(uc *auth.AuthUseCase, callbackURL string, secureCookie bool) *AuthHandler {
	return &AuthHandler{uc: uc, callbackURL: callbackURL, secure: secureCookie}
}

func (h *AuthHandler) redirectURL(c *fiber.Ctx) string {
	if strings.HasPrefix(h.callbackURL, "http://") || strings.HasPrefix(h.callbackURL, "https://") {
		return h.callbackURL
	}
	return c.BaseURL() + h.callbackURL
}

// Google godoc
// @Summary      Iniciar login con Google
// @Tags         auth
// @Success      302
// @Router       /auth/google [get]
func (h *AuthHandler) Google(c *fiber.Ctx) error {
	state := h.uc.NewState()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth",
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(10 * time.Minute),
	})
	return c.Redirect(h.uc.LoginURL(state, h.redirectURL(c)), fiber.StatusFound)
}

// Callback godoc
// @Summary      Callback OAuth de Google
// @Tags         auth
// @Param        code   query  string  true  "Código de autorización"
// @Param        state  query  string  true  "Estado anti-CSRF"
// @Success      302
// @Router       /auth/google/callback [get]
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		log.Warn().Msg("callback OAuth con state inválido")
		return c.Redirect("/auth/failure", fiber.StatusFound)
	}
	c.ClearCookie(stateCookie)

	token, err := h.uc.CompleteLogin(c.UserContext(), c.Query("code"), h.redirectURL(c))
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			log.Error().Err(err).Msg("login con Google")
		}
		return c.Redirect("/auth/failure", fiber.StatusFound)
	}
	return c.Redirect("/auth/success?token="+url.QueryEscape(token), fiber.StatusFound)
}

// Success godoc
// @Summary      Token emitido tras el login
// @Tags         auth
// @Produce      json
// @Param        token  query  string  true  "JWT"
// @Success      200  {object}  dto.AuthSuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /auth/success [get]
func (h *AuthHandler) Success(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fail(c, fiber.StatusBadRequest, CodeValidation, "token requerido")
	}
	return c.JSON(dto.AuthSuccessResponse{
		Message: "autenticación exitosa",
		Token:   token,
		Usage:   "Authorization: Bearer <token>",
	})
}

// Failure godoc
// @Summary      Login fallido
// @Tags         auth
// @Produce      json
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/failure [get]
func (h *AuthHandler) Failure(c *fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "no se pudo completar la autenticación")
}

// Verify godoc
// @Summary      Verificar token
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.VerifyResponse
// @Failure      401  {object}  dto.VerifyResponse
// @Failure      403  {object}  dto.VerifyResponse
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token, _ := bearerToken(c)
	user, err := h.uc.Verify(token)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.VerifyResponse{Message: "token no proporcionado"})
	case err != nil:
		return c.Status(fiber.StatusForbidden).JSON(dto.VerifyResponse{Message: "token inválido o expirado"})
	}
	return c.JSON(dto.VerifyResponse{Authenticated: true, User: user})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(stateCookie)
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada; descarte el token en el cliente"})
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

// Locals keys de la identidad autenticada en Fiber.
const (
	LocalUserID = "user_id"
	LocalUser   = "user"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return fail(c, fiber.StatusUnauthorized, CodeMissingToken, "Authorization: Bearer <token> requerido")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, CodeInvalidToken, "token inválido o expirado")
		}
		c.Locals(LocalUserID, claims.Identity.ID)
		c.Locals(LocalUser, &dto.UserDTO{
			ID:    claims.Identity.ID,
			Email: claims.Identity.Email,
			Name:  claims.Identity.Name,
		})
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization. ok=false si falta o está vacío.
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}

// GetUserID devuelve el ID del usuario autenticado (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUser devuelve la identidad autenticada o nil.
func GetUser(c *fiber.Ctx) *dto.UserDTO {
	u, _ := c.Locals(LocalUser).(*dto.UserDTO)
	return u
}

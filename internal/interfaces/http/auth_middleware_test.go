package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Backoffice-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Backoffice-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "backoffice-test"
	testExpMin    = 60
)

var testIdentity = pkgjwt.Identity{ID: "109876543210", Email: "ana@example.com", Name: "Ana Gómez"}

// buildTestApp aplicación mínima con AuthMiddleware y un handler que devuelve la identidad.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		user := apphttp.GetUser(c)
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   user.Email,
			"name":    user.Name,
		})
	})
	return app
}

// bearer genera un JWT válido para testIdentity.
func bearer(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIdentity, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	resp := doProtected(t, buildTestApp(), bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testIdentity.ID, body["user_id"])
	assert.Equal(t, testIdentity.Email, body["email"])
	assert.Equal(t, testIdentity.Name, body["name"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doProtected(t, buildTestApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	resp := doProtected(t, buildTestApp(), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doProtected(t, buildTestApp(), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testIdentity, testIssuer, -1)
	require.NoError(t, err)

	resp := doProtected(t, buildTestApp(), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testIdentity, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, buildTestApp(), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

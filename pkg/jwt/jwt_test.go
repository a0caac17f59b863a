package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Backoffice-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testIdentity = pkgjwt.Identity{ID: "109876543210", Email: "ana@example.com", Name: "Ana Gómez"}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "backoffice-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, claims.Identity)
	assert.Equal(t, testIdentity.ID, claims.Subject)
	assert.Equal(t, "backoffice-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "backoffice-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "backoffice-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIdentity, "x", 60)
	assert.Error(t, err)
}

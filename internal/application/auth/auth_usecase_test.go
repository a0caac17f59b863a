package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/auth"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Backoffice-api/pkg/jwt"
)

type fakeProvider struct {
	identity *entity.Identity
	err      error
	gotCode  string
}

func (f *fakeProvider) AuthCodeURL(state, redirectURL string) string {
	return "https://accounts.example.com/auth?state=" + state + "&redirect_uri=" + redirectURL
}

func (f *fakeProvider) Exchange(_ context.Context, code, _ string) (*entity.Identity, error) {
	f.gotCode = code
	return f.identity, f.err
}

var jwtCfg = auth.JWTConfig{Secret: "secret-de-prueba", ExpMinutes: 60, Issuer: "backoffice-test"}

func TestCompleteLogin_FirmaTokenVerificable(t *testing.T) {
	provider := &fakeProvider{identity: &entity.Identity{ID: "g-1", Email: "ana@example.com", Name: "Ana"}}
	uc := auth.NewAuthUseCase(provider, jwtCfg)

	token, err := uc.CompleteLogin(context.Background(), "code-123", "http://localhost/auth/google/callback")
	require.NoError(t, err)
	assert.Equal(t, "code-123", provider.gotCode)

	claims, err := pkgjwt.Parse(jwtCfg.Secret, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)

	user, err := uc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "g-1", user.ID)
	assert.Equal(t, "Ana", user.Name)
}

func TestCompleteLogin_FalloDelProveedor(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeProvider{err: errors.New("invalid_grant")}, jwtCfg)

	_, err := uc.CompleteLogin(context.Background(), "code", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.CompleteLogin(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeProvider{}, jwtCfg)

	_, err := uc.Verify("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Verify("no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	expired, err := pkgjwt.Generate(jwtCfg.Secret, pkgjwt.Identity{ID: "x"}, "i", -1)
	require.NoError(t, err)
	_, err = uc.Verify(expired)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestNewState_Aleatorio(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeProvider{}, jwtCfg)
	assert.NotEqual(t, uc.NewState(), uc.NewState())
	assert.Contains(t, uc.LoginURL("abc", "/cb"), "state=abc")
}

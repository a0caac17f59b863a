// Package auth contiene el login delegado en un proveedor OAuth y la emisión/verificación de JWT.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/pkg/jwt"
)

// IdentityProvider puerto de salida hacia el proveedor OAuth (Google).
type IdentityProvider interface {
	// AuthCodeURL URL de consentimiento a la que se redirige al usuario.
	AuthCodeURL(state, redirectURL string) string
	// Exchange canjea el code por un token y lee el perfil del usuario.
	Exchange(ctx context.Context, code, redirectURL string) (*entity.Identity, error)
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación. Los tokens no tienen estado en el servidor.
type AuthUseCase struct {
	provider IdentityProvider
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(provider IdentityProvider, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{provider: provider, jwtCfg: jwtCfg}
}

// NewState genera el valor aleatorio que protege el callback contra CSRF.
func (uc *AuthUseCase) NewState() string {
	return uuid.NewString()
}

// LoginURL URL del proveedor para iniciar el login.
func (uc *AuthUseCase) LoginURL(state, redirectURL string) string {
	return uc.provider.AuthCodeURL(state, redirectURL)
}

// CompleteLogin canjea el code del callback y firma un JWT con la identidad obtenida.
// Un fallo del proveedor devuelve domain.ErrUnauthorized.
func (uc *AuthUseCase) CompleteLogin(ctx context.Context, code, redirectURL string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: code vacío", domain.ErrUnauthorized)
	}
	identity, err := uc.provider.Exchange(ctx, code, redirectURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  identity.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// Verify valida un token.
//
// Retorna:
//   - domain.ErrUnauthorized si el token viene vacío.
//   - domain.ErrForbidden    si es inválido o expiró.
func (uc *AuthUseCase) Verify(token string) (*dto.UserDTO, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}
	return &dto.UserDTO{ID: claims.Identity.ID, Email: claims.Email, Name: claims.Name}, nil
}

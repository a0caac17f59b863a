// Package oauth implementa el proveedor de identidad Google (OAuth2 authorization code).
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// GoogleUserInfoURL endpoint OpenID del perfil del usuario.
const GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleProvider implementa auth.IdentityProvider.
type GoogleProvider struct {
	cfg         oauth2.Config
	userInfoURL string
}

// NewGoogleProvider construye el proveedor con scopes profile y email.
func NewGoogleProvider(clientID, clientSecret string) *GoogleProvider {
	return &GoogleProvider{
		cfg: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "profile", "email"},
		},
		userInfoURL: GoogleUserInfoURL,
	}
}

// WithEndpoints reemplaza los endpoints de Google (tests).
func (p *GoogleProvider) WithEndpoints(authURL, tokenURL, userInfoURL string) *GoogleProvider {
	p.cfg.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL, AuthStyle: oauth2.AuthStyleInParams}
	p.userInfoURL = userInfoURL
	return p
}

// AuthCodeURL URL de consentimiento.
func (p *GoogleProvider) AuthCodeURL(state, redirectURL string) string {
	cfg := p.cfg
	cfg.RedirectURL = redirectURL
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type userInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// Exchange canjea el code y lee el perfil del usuario.
func (p *GoogleProvider) Exchange(ctx context.Context, code, redirectURL string) (*entity.Identity, error) {
	cfg := p.cfg
	cfg.RedirectURL = redirectURL
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth: canjear code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("oauth: armar petición de perfil: %w", err)
	}
	resp, err := cfg.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("oauth: leer perfil: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oauth: perfil respondió %d", resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("oauth: decodificar perfil: %w", err)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("oauth: perfil sin identificador")
	}
	return &entity.Identity{ID: info.Sub, Name: info.Name, Email: info.Email, Picture: info.Picture}, nil
}

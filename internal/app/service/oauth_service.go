package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"members_roulette/internal/common"
	"members_roulette/internal/common/security"
	"members_roulette/internal/domain/model"
	"members_roulette/internal/domain/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthService runs the Google authorization-code flow and records the
// resulting identity in the session store.
type OAuthService struct {
	sessionRepo repository.SessionRepository
	oauthCfg    *oauth2.Config
	stateSecret []byte
	identityTTL time.Duration
}

func NewOAuthService(sessionRepo repository.SessionRepository, clientID, clientSecret, redirectURL string, stateSecret []byte, identityTTL time.Duration) *OAuthService {
	return &OAuthService{
		sessionRepo: sessionRepo,
		oauthCfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
		stateSecret: stateSecret,
		identityTTL: identityTTL,
	}
}

func (s *OAuthService) IdentityTTL() time.Duration {
	return s.identityTTL
}

// AuthURL builds the Google consent-page URL with a signed state parameter.
func (s *OAuthService) AuthURL() (string, error) {
	state, err := security.GenerateStateToken(s.stateSecret, uuid.NewString())
	if err != nil {
		return "", fmt.Errorf("Erro ao gerar o parâmetro state: %w", err)
	}
	return s.oauthCfg.AuthCodeURL(state), nil
}

type googleUserinfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// HandleCallback verifies the state round-trip, exchanges the authorization
// code, fetches the user's profile and stores a fresh identity.
func (s *OAuthService) HandleCallback(ctx context.Context, state, code string) (*model.Identity, error) {
	if err := security.ValidateStateToken(s.stateSecret, state); err != nil {
		return nil, common.UnauthorizedError("Parâmetro state inválido ou expirado.")
	}
	if code == "" {
		return nil, common.ValidationError("Código de autorização ausente.")
	}

	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("Erro ao trocar o código de autorização: %w", err)
	}

	client := s.oauthCfg.Client(ctx, token)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("Erro ao buscar o perfil do usuário: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Erro ao buscar o perfil do usuário: status %d", resp.StatusCode)
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("Erro ao decodificar o perfil do usuário: %w", err)
	}

	identity := &model.Identity{
		Token:    uuid.NewString(),
		Provider: "google",
		Subject:  info.ID,
		Email:    info.Email,
		Name:     info.Name,
	}
	if err := s.sessionRepo.SaveIdentity(ctx, identity, s.identityTTL); err != nil {
		return nil, fmt.Errorf("Erro ao registrar a identidade: %w", err)
	}
	return identity, nil
}

func (s *OAuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteIdentity(ctx, token); err != nil {
		return fmt.Errorf("Erro ao encerrar a sessão do Google: %w", err)
	}
	return nil
}

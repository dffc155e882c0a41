package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driven"
	"github.com/lorenzomotta/AUSER/internal/core/ports/driving"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// AuthService drives the OAuth2 login flow: it seeds the credential
// identity from settings, generates the CSRF state and delegates the
// token operations to the gateway.
type AuthService struct {
	creds   driven.CredentialStore
	gateway driven.AuthGateway

	mu    sync.Mutex
	state string
}

var _ driving.Auth = (*AuthService)(nil)

// NewAuthService creates the login flow service.
func NewAuthService(creds driven.CredentialStore, gateway driven.AuthGateway) *AuthService {
	return &AuthService{creds: creds, gateway: gateway}
}

// IsAuthenticated reports whether a usable access token is stored.
func (a *AuthService) IsAuthenticated(ctx context.Context) bool {
	cred, err := a.creds.Get(ctx)
	return err == nil && cred.IsAuthenticated()
}

// BeginAuthorization returns the authorization URL the user must visit
// and the CSRF state the redirect must echo back.
func (a *AuthService) BeginAuthorization(ctx context.Context, s domain.Settings) (string, string, error) {
	if err := s.Validate(); err != nil {
		return "", "", err
	}
	if err := a.seedCredential(ctx, s); err != nil {
		return "", "", err
	}

	state := uuid.NewString()
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()

	authURL, err := a.gateway.AuthorizationURL(s.TenantID, s.ClientID, s.RedirectURI, state)
	if err != nil {
		return "", "", err
	}
	logger.Debug("authorization begun, state %s", state)
	return authURL, state, nil
}

// State returns the CSRF state of the last begun authorization, or ""
// when none is pending.
func (a *AuthService) State() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// CompleteAuthorization redeems the authorization code and returns the
// stored credential.
func (a *AuthService) CompleteAuthorization(ctx context.Context, s domain.Settings, code string) (domain.Credential, error) {
	if err := s.Validate(); err != nil {
		return domain.Credential{}, err
	}
	if err := a.seedCredential(ctx, s); err != nil {
		return domain.Credential{}, err
	}
	return a.gateway.ExchangeCode(ctx, code, s.RedirectURI)
}

// seedCredential writes the client identity into the credential store,
// keeping any tokens already present.
func (a *AuthService) seedCredential(ctx context.Context, s domain.Settings) error {
	cred, err := a.creds.Get(ctx)
	if err != nil {
		return domain.Wrap(domain.KindConfig, "auth: seed credential", err)
	}
	cred.SiteURL = s.SiteURL
	cred.TenantID = s.TenantID
	cred.ClientID = s.ClientID
	if s.ClientSecret != "" {
		cred.ClientSecret = s.ClientSecret
	}
	return a.creds.Save(ctx, cred)
}

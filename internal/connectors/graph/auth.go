package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/lorenzomotta/AUSER/internal/core/domain"
	"github.com/lorenzomotta/AUSER/internal/logger"
)

// tokenResponse is the provider's token endpoint payload.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (c *Client) tokenURL(tenantID string) string {
	return fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.loginBase, tenantID)
}

// AuthorizationURL builds the user-facing authorization URL for the
// authorization-code flow. The provider requires response_mode=query
// so the code arrives as a query parameter on the redirect.
func (c *Client) AuthorizationURL(tenantID, clientID, redirectURI, state string) (string, error) {
	const op = "graph: authorization URL"
	if tenantID == "" || clientID == "" {
		return "", domain.E(domain.KindConfig, op, "tenant ID and client ID are required")
	}
	if redirectURI == "" {
		return "", domain.E(domain.KindConfig, op, "redirect URI is required")
	}

	cfg := oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Scopes:      strings.Fields(Scope),
		Endpoint: oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/%s/oauth2/v2.0/authorize", c.loginBase, tenantID),
			TokenURL: c.tokenURL(tenantID),
		},
	}
	return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("response_mode", "query")), nil
}

// ExchangeCode redeems an authorization code for tokens, stores the
// updated credential and returns it.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (domain.Credential, error) {
	const op = "graph: exchange code"

	cred, err := c.creds.Get(ctx)
	if err != nil {
		return domain.Credential{}, domain.Wrap(domain.KindConfig, op, err)
	}
	if !cred.HasClientIdentity() {
		return domain.Credential{}, domain.E(domain.KindConfig, op, "tenant ID and client ID are not configured")
	}

	form := map[string]string{
		"grant_type":   "authorization_code",
		"client_id":    cred.ClientID,
		"code":         code,
		"redirect_uri": redirectURI,
		"scope":        Scope,
	}
	if cred.ClientSecret != "" {
		form["client_secret"] = cred.ClientSecret
	}

	tok, err := c.postTokenForm(ctx, op, cred.TenantID, form, "code exchange rejected")
	if err != nil {
		return domain.Credential{}, err
	}

	applyToken(&cred, tok)
	if err := c.creds.Save(ctx, cred); err != nil {
		return domain.Credential{}, domain.Wrap(domain.KindConfig, op, err)
	}
	logger.Info("authorization complete, token valid until %s", cred.ExpiresAt.Format(time.RFC3339))
	return cred, nil
}

// EnsureValid returns a credential with a usable access token,
// refreshing it first when expired. Refreshes are serialized so two
// callers never spend the same refresh token.
func (c *Client) EnsureValid(ctx context.Context) (domain.Credential, error) {
	const op = "graph: ensure valid token"

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	cred, err := c.creds.Get(ctx)
	if err != nil {
		return domain.Credential{}, domain.Wrap(domain.KindConfig, op, err)
	}
	if cred.AccessToken == "" {
		return domain.Credential{}, domain.E(domain.KindAuth, op, "not authenticated")
	}
	if !cred.IsExpired() {
		return cred, nil
	}
	if !cred.HasRefreshToken() {
		return domain.Credential{}, domain.E(domain.KindAuth, op, "access token expired and no refresh token is stored")
	}

	logger.Info("access token expired, refreshing")
	return c.refresh(ctx, cred)
}

// refresh spends the refresh token and stores the replacement
// credential. The caller must hold refreshMu.
func (c *Client) refresh(ctx context.Context, cred domain.Credential) (domain.Credential, error) {
	const op = "graph: refresh token"

	if !cred.HasClientIdentity() {
		return domain.Credential{}, domain.E(domain.KindConfig, op, "tenant ID and client ID are not configured")
	}

	form := map[string]string{
		"grant_type":    "refresh_token",
		"client_id":     cred.ClientID,
		"refresh_token": cred.RefreshToken,
		"scope":         Scope,
	}
	if cred.ClientSecret != "" {
		form["client_secret"] = cred.ClientSecret
	}

	tok, err := c.postTokenForm(ctx, op, cred.TenantID, form, "token refresh rejected")
	if err != nil {
		return domain.Credential{}, err
	}

	applyToken(&cred, tok)
	if err := c.creds.Save(ctx, cred); err != nil {
		return domain.Credential{}, domain.Wrap(domain.KindConfig, op, err)
	}
	return cred, nil
}

// postTokenForm posts a form to the token endpoint and decodes the
// token payload. Provider rejections keep their response body so the
// user sees the AADSTS diagnostic.
func (c *Client) postTokenForm(
	ctx context.Context, op, tenantID string, form map[string]string, rejectMsg string,
) (tokenResponse, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(form).
		Post(c.tokenURL(tenantID))
	if err != nil {
		return tokenResponse{}, domain.Wrap(domain.KindUpstream, op, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return tokenResponse{}, authError(op, rejectMsg, resp.StatusCode(), resp.String())
	}

	var tok tokenResponse
	if err := json.Unmarshal(resp.Body(), &tok); err != nil {
		return tokenResponse{}, domain.Wrap(domain.KindParse, op, err)
	}
	if tok.AccessToken == "" {
		return tokenResponse{}, domain.E(domain.KindParse, op, "token response has no access_token")
	}
	return tok, nil
}

// applyToken replaces the credential's token state as a whole. The
// stored deadline is shortened by the safety margin; a missing
// expires_in leaves the token without a deadline. A missing refresh
// token keeps the previous one, since the provider only rotates it
// sometimes.
func applyToken(cred *domain.Credential, tok tokenResponse) {
	cred.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		cred.RefreshToken = tok.RefreshToken
	}
	if tok.ExpiresIn > 0 {
		cred.ExpiresAt = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - refreshSafetyMargin)
	} else {
		cred.ExpiresAt = time.Time{}
	}
}

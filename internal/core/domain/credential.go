package domain

import "time"

// Credential is the single mutable authentication state for the
// SharePoint site. Tokens and identity live together so a refresh can
// replace access token, refresh token and expiry atomically.
type Credential struct {
	SiteURL      string    `json:"site_url"`
	TenantID     string    `json:"tenant_id"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret,omitempty"`
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	// ExpiresAt is the access token deadline, already shortened by the
	// refresh safety margin. Zero means the provider supplied no expiry;
	// such tokens are assumed valid until proven otherwise.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// IsAuthenticated reports whether the credential holds a usable access
// token. A token without an expiry is treated as valid.
func (c Credential) IsAuthenticated() bool {
	if c.AccessToken == "" {
		return false
	}
	return !c.IsExpired()
}

// IsExpired reports whether the access token deadline has passed.
// A zero deadline never expires.
func (c Credential) IsExpired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// HasRefreshToken reports whether the credential can be refreshed.
func (c Credential) HasRefreshToken() bool {
	return c.RefreshToken != ""
}

// HasClientIdentity reports whether the OAuth client identity needed
// for token requests is present.
func (c Credential) HasClientIdentity() bool {
	return c.TenantID != "" && c.ClientID != ""
}

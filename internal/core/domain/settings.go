package domain

// Settings is the local configuration needed to talk to the site.
type Settings struct {
	SiteURL      string
	TenantID     string
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Validate checks the fields required before any remote call.
// The client secret is only needed for token requests, so it is not
// required here.
func (s Settings) Validate() error {
	const op = "settings: validate"
	if s.SiteURL == "" {
		return E(KindConfig, op, "site URL is not configured")
	}
	if s.TenantID == "" {
		return E(KindConfig, op, "tenant ID is not configured")
	}
	if s.ClientID == "" {
		return E(KindConfig, op, "client ID is not configured")
	}
	return nil
}

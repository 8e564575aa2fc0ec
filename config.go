package flightdocs

// DefaultBaseURL is the catalogue API used when none is configured.
const DefaultBaseURL = "https://center.alces-flight.com/api/v1"

// Config holds user settings read from the config file.
type Config struct {
	BaseURL   string `yaml:"base_url,omitempty"`
	AuthToken string `yaml:"auth_token,omitempty"`
	AuthEmail string `yaml:"auth_email,omitempty"`
	AuthUser  string `yaml:"auth_user,omitempty"`
	VerifySSL *bool  `yaml:"verify_ssl,omitempty"`
}

// SignedIn reports whether an API token is configured.
func (c *Config) SignedIn() bool {
	return c != nil && c.AuthToken != ""
}

// APIURL returns the configured base URL or DefaultBaseURL.
func (c *Config) APIURL() string {
	if c == nil || c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

// VerifyTLS reports whether TLS certificates should be verified.
// Defaults to true.
func (c *Config) VerifyTLS() bool {
	if c == nil || c.VerifySSL == nil {
		return true
	}
	return *c.VerifySSL
}

// RequireSignedIn returns ENOTSIGNEDIN when no API token is configured.
func (c *Config) RequireSignedIn() error {
	if !c.SignedIn() {
		return Errorf(ENOTSIGNEDIN, "You are not signed in.")
	}
	return nil
}

package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultTokenFile is where the installed-app OAuth token is read and persisted.
const DefaultTokenFile = "token.json"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
	now     func() time.Time
}

// Option customises a Client or its credential loading.
type Option func(*options)

type options struct {
	tokenFile string
	now       func() time.Time
}

// WithTokenFile sets the OAuth token file used for installed-app credentials.
func WithTokenFile(path string) Option {
	return func(o *options) {
		if path != "" {
			o.tokenFile = path
		}
	}
}

// WithClock overrides the clock that bounds "upcoming" listings.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{tokenFile: DefaultTokenFile, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account
// or installed-app OAuth JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, opts ...Option) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, opts...)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, opts ...Option) (*Client, error) {
	o := newOptions(opts)

	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc, now: o.now}, nil
	}

	// Fallback: installed app credentials with a stored token
	oauthConfig, cfgErr := OAuthConfigFromJSON(credentialsJSON)
	if cfgErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedCredentials, errors.Join(err, cfgErr))
	}

	tok, tokErr := LoadToken(o.tokenFile)
	if tokErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no usable token at %s (run gcal-auth): %w", o.tokenFile, tokErr)
	}

	ts := newPersistingTokenSource(oauthConfig.TokenSource(ctx, tok), o.tokenFile, tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(ts))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc, now: o.now}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...Option) (*Client, error) {
	o := newOptions(opts)
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, now: o.now}, nil
}

// OAuthConfigFromJSON builds an oauth2 config from an "installed" or "web"
// client secrets file downloaded from Google Cloud Console.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	config, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// LoadToken reads an oauth2 token previously written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("token file %s has neither access nor refresh token", path)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Command gcal-auth runs the one-time OAuth consent flow for a desktop
// client and writes the token file the API server reads.
//
// Usage:
//
//	go run ./cmd/gcal-auth -credentials credentials.json -token token.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"calendar-assistant/config"
	"calendar-assistant/pkg/gcalendar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	credsPath := flag.String("credentials", cfg.GoogleCalendar.CredentialsFile, "OAuth desktop client credentials file")
	tokenPath := flag.String("token", cfg.GoogleCalendar.TokenFile, "where to write the token")
	flag.Parse()

	if err := run(context.Background(), *credsPath, *tokenPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, credsPath, tokenPath string) error {
	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials file %q: %w", credsPath, err)
	}

	oauthCfg, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		return fmt.Errorf("%w\nmake sure %q is an OAuth desktop app credentials file", err, credsPath)
	}

	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Println("Step 1: open this URL and sign in with the calendar's Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		return err
	}

	fmt.Printf("\nToken saved to %s. Restart the API server to pick it up.\n", tokenPath)
	return nil
}

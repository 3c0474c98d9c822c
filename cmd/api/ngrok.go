package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
	ngrokTimeout  = 5 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// ngrokDetector polls the ngrok local API until a tunnel shows up.
type ngrokDetector struct {
	apiBase  string
	client   *http.Client
	attempts int
	interval time.Duration
}

func newNgrokDetector(apiBase string) ngrokDetector {
	return ngrokDetector{
		apiBase:  apiBase,
		client:   &http.Client{Timeout: ngrokTimeout},
		attempts: ngrokAttempts,
		interval: ngrokInterval,
	}
}

// detect returns the public URL of the first HTTPS tunnel, or of any tunnel.
func (d ngrokDetector) detect(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		url, err := d.tunnelURL(ctx)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == d.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d.interval):
		}
	}
	return "", fmt.Errorf("ngrok tunnel not found after %d attempts: %w", d.attempts, lastErr)
}

func (d ngrokDetector) tunnelURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnels
}

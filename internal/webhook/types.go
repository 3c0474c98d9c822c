package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	SecretToken     string   // Echoed by Telegram in the secret token header
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max updates per chat per minute, 0 disables
}

const (
	limiterCapacity = 1000
	limiterTTLMin   = 5
)

package middleware

import (
	"calendar-assistant/internal/webhook"
	"calendar-assistant/pkg/log"
)

type Middleware struct {
	l        log.Logger
	security *webhook.SecurityValidator
}

func New(l log.Logger, security *webhook.SecurityValidator) Middleware {
	return Middleware{
		l:        l,
		security: security,
	}
}

package webhook

import "errors"

var (
	ErrInvalidSecretToken = errors.New("invalid webhook secret token")
	ErrIPNotAllowed       = errors.New("ip not whitelisted")
	ErrRateLimited        = errors.New("rate limit exceeded")
)

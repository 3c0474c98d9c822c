package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

// Webhook acknowledgement statuses.
const (
	StatusAccepted    = "accepted"
	StatusIgnored     = "ignored"
	StatusRateLimited = "rate_limited"
)

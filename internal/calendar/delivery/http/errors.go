package http

import (
	"crypto/subtle"
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/response"
)

const (
	defaultFeedLimit = 50
	defaultFeedName  = "Calendar assistant"
	maxListLimit     = 100
	defaultListLimit = 10

	contentTypeCalendar = "text/calendar; charset=utf-8"
	productID           = "-//calendar-assistant//upcoming events//EN"
)

var errInvalidLimit = errors.New("limit must be between 1 and 100")

// mapError turns domain errors into client errors. Anything unmapped is
// answered as a 500 by response.Error.
func mapError(err error) error {
	switch {
	case errors.Is(err, errInvalidLimit):
		return response.BadRequest(errInvalidLimit.Error(), err)
	case errors.Is(err, gcalendar.ErrCalendarNotFound):
		return response.NotFound("calendar not found", err)
	default:
		return err
	}
}

// authorized checks the feed token; an unset token leaves the routes open.
func (h *handler) authorized(c *gin.Context) bool {
	if h.cfg.Token == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(c.Query("token")), []byte(h.cfg.Token)) == 1
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/response"
)

// Feed godoc
// @Summary     Upcoming events as iCalendar
// @Description Serves the upcoming events of the configured calendar as a subscribable ICS feed.
// @Tags        Calendar
// @Produce     text/calendar
// @Param       token query string false "Feed token"
// @Success     200 {string} string "VCALENDAR body"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Calendar not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /calendar.ics [GET]
func (h *handler) Feed(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.authorized(c) {
		response.Unauthorized(c)
		return
	}

	events, err := h.uc.ListUpcoming(ctx, h.cfg.Limit)
	if err != nil {
		response.Error(c, mapError(err))
		return
	}

	h.l.Debugf(ctx, "Feed: serving %d events", len(events))
	body := buildFeed(h.cfg.Name, events, h.now().UTC()).Serialize()
	c.Data(http.StatusOK, contentTypeCalendar, []byte(body))
}

// List godoc
// @Summary     List upcoming events
// @Description Returns the next events of the configured calendar.
// @Tags        Calendar
// @Produce     json
// @Param       limit query int    false "Number of events (default: 10, max: 100)"
// @Param       token query string false "Feed token"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Calendar not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.authorized(c) {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		// limit is the only query field, so any bind failure is a bad limit.
		response.Error(c, response.BadRequest(errInvalidLimit.Error(), err))
		return
	}
	if err := req.validate(); err != nil {
		response.Error(c, mapError(err))
		return
	}

	events, err := h.uc.ListUpcoming(ctx, req.limit())
	if err != nil {
		response.Error(c, mapError(err))
		return
	}

	response.OK(c, newListResp(events))
}

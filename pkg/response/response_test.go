package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/response"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request = req.WithContext(log.WithTraceID(req.Context(), "trace-42"))
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	return resp
}

func TestOK(t *testing.T) {
	c, w := newTestContext()

	response.OK(c, map[string]string{"foo": "bar"})

	if w.Code != http.StatusOK {
		t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
	}
	resp := decode(t, w)
	if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
		t.Errorf("unexpected envelope %+v", resp)
	}
	dMap, ok := resp.Data.(map[string]interface{})
	if !ok || dMap["foo"] != "bar" {
		t.Errorf("unexpected data payload: %v", resp.Data)
	}
	if resp.TraceID != "" {
		t.Errorf("success responses carry no trace id, got %q", resp.TraceID)
	}
}

func TestError(t *testing.T) {
	cause := errors.New(`strconv.ParseInt: parsing "ten": invalid syntax`)

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "Bad request",
			err:         response.BadRequest("limit must be between 1 and 100", cause),
			wantCode:    http.StatusBadRequest,
			wantMessage: "limit must be between 1 and 100",
		},
		{
			name:        "Wrapped not found",
			err:         fmt.Errorf("listing: %w", response.NotFound("calendar not found", cause)),
			wantCode:    http.StatusNotFound,
			wantMessage: "calendar not found",
		},
		{
			name:        "Plain error is internal",
			err:         cause,
			wantCode:    http.StatusInternalServerError,
			wantMessage: response.DefaultErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			response.Error(c, tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			resp := decode(t, w)
			if resp.ErrorCode != tt.wantCode || resp.Message != tt.wantMessage {
				t.Errorf("unexpected envelope %+v", resp)
			}
			if resp.TraceID != "trace-42" {
				t.Errorf("expected trace id in body, got %q", resp.TraceID)
			}
			if !c.IsAborted() {
				t.Errorf("expected context to be aborted")
			}
			if len(c.Errors) != 1 || !errors.Is(c.Errors[0].Err, cause) {
				t.Errorf("expected cause recorded on context, got %v", c.Errors)
			}
		})
	}
}

func TestInternalError(t *testing.T) {
	c, w := newTestContext()

	response.InternalError(c, errors.New("db crash"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp := decode(t, w); resp.Message != response.DefaultErrorMessage {
		t.Errorf("internal error details must not leak, got %q", resp.Message)
	}
	if len(c.Errors) != 1 || c.Errors[0].Err.Error() != "db crash" {
		t.Errorf("expected error recorded on context, got %v", c.Errors)
	}
}

func TestHTTPErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := response.NotFound("calendar not found", cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be reachable")
	}
	if err.Error() != "calendar not found: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestUnauthorizedAndForbidden(t *testing.T) {
	c, w := newTestContext()
	response.Unauthorized(c)
	if w.Code != http.StatusUnauthorized || decode(t, w).ErrorCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}

	c, w = newTestContext()
	response.Forbidden(c)
	if w.Code != http.StatusForbidden || decode(t, w).Message != "Forbidden" {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

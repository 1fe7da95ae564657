package web

// errors.go provides unified error responses for the web layer.
//
// Every error is logged server-side with the request ID and returned to the
// client as JSON with a user-facing message, an action and a support code
// (see core.MapError). Validation failures additionally list every message
// raised for the rejected row.

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/csvtransform/internal/core"
)

var (
	errRateLimited      = errors.New("rate limit exceeded")
	errUnsupportedMedia = errors.New("only accepts Content-Type: text/csv")
	errNotAcceptable    = errors.New("only accepts Accept: application/json")
	errBodyTooLarge     = errors.New("request body too large")
)

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Action  string   `json:"action,omitempty"`
	Code    string   `json:"code"`
	Errors  []string `json:"errors,omitempty"` // All messages of a rejected row
	Line    int      `json:"line,omitempty"`   // Input line of a rejected or malformed row
}

// writeError logs err and writes it as an ErrorResponse.
func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	msg := core.MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	resp := ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	}

	var ve *core.ValidationError
	var me *core.MalformedInputError
	switch {
	case errors.As(err, &ve):
		resp.Errors = ve.Messages()
		resp.Line = ve.Row.Line
	case errors.As(err, &me):
		resp.Errors = []string{me.Error()}
		resp.Line = me.Line
	case errors.Is(err, errUnsupportedMedia), errors.Is(err, errNotAcceptable):
		resp.Error = err.Error()
	case !core.IsUserFacing(err) && status < http.StatusInternalServerError:
		// Unmapped client errors keep their own wording.
		resp.Error = err.Error()
	}

	writeJSON(w, status, resp)
}

// clientIP strips the port from a RemoteAddr value.
func clientIP(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// internal/app/features/errors/errors.go

// Package errors centralizes error responses: every failure path logs the
// internal cause with the request ID and returns a JSON envelope carrying
// only the user-safe message.
package errors

import (
	"net/http"

	"github.com/confhub/confhub/internal/app/system/requestid"
	"github.com/confhub/confhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// ErrorLogger logs failures and writes their JSON envelopes.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs the internal error and answers 500 with userMsg.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.Log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestid.FromContext(r.Context())),
	)
	respond.Error(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs the rejected input and answers 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.Log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestid.FromContext(r.Context())),
	)
	respond.Error(w, http.StatusBadRequest, userMsg)
}

// Unauthorized answers 401 for requests with no signed-in principal.
func Unauthorized(w http.ResponseWriter) {
	respond.Error(w, http.StatusUnauthorized, "sign in required")
}

package apierr

import (
	"encoding/json"
	"net/http"

	"github.com/onnwee/meteodaten/backend/internal/logger"
)

// ErrorCode identifies an error class in logs and metrics. It is not part of the response body.
type ErrorCode string

// Error code constants organized by category
const (
	// DATA_ - Data file errors
	ErrDataNotFound    ErrorCode = "DATA_NOT_FOUND"
	ErrDataInvalidJSON ErrorCode = "DATA_INVALID_JSON"
	ErrDataUnreadable  ErrorCode = "DATA_UNREADABLE"

	// ROUTE_ - Routing errors
	ErrRouteNotFound    ErrorCode = "ROUTE_NOT_FOUND"
	ErrMethodNotAllowed ErrorCode = "ROUTE_METHOD_NOT_ALLOWED"

	// SYSTEM_ - System and server errors
	ErrSystemInternal ErrorCode = "SYSTEM_INTERNAL"

	// RATE_LIMIT_ - Rate limiting errors
	ErrRateLimitGlobal ErrorCode = "RATE_LIMIT_GLOBAL"
	ErrRateLimitIP     ErrorCode = "RATE_LIMIT_IP"
)

// Response messages for data file errors. Clients match on these strings.
const (
	MsgDataNotFound    = "JSON file not found. Please check the path and filename."
	MsgDataInvalidJSON = "Invalid JSON format. Please check the file content."
	MsgDataUnreadable  = "JSON file could not be read. Please check file permissions."
)

// Error represents a structured API error
type Error struct {
	Code    ErrorCode
	Message string
	status  int // HTTP status code
}

// ErrorResponse is the body written for every error: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// New creates a new API error
func New(code ErrorCode, message string, status int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		status:  status,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Status returns the HTTP status code
func (e *Error) Status() int {
	return e.status
}

// WithStatus returns a copy of the error with a different HTTP status.
func (e *Error) WithStatus(status int) *Error {
	cp := *e
	cp.status = status
	return &cp
}

// WriteError writes a structured error response to the HTTP response writer.
// Error bodies are never cacheable, whatever status they carry.
func WriteError(w http.ResponseWriter, err *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(err.Status())
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: err.Message}); encErr != nil {
		logger.Warn("Failed to write error response", "code", err.Code, "error", encErr)
	}
}

// WriteErrorWithContext writes the error and logs it with the request ID from context.
func WriteErrorWithContext(w http.ResponseWriter, r *http.Request, err *Error) {
	logger.WithRequestID(r.Context()).Debug("Writing error response",
		"code", err.Code,
		"status", err.Status(),
		"path", r.URL.Path,
	)
	WriteError(w, err)
}

// Helper functions for common errors

// DataNotFound creates the missing data file error
func DataNotFound() *Error {
	return New(ErrDataNotFound, MsgDataNotFound, http.StatusNotFound)
}

// DataInvalidJSON creates the malformed data file error
func DataInvalidJSON() *Error {
	return New(ErrDataInvalidJSON, MsgDataInvalidJSON, http.StatusInternalServerError)
}

// DataUnreadable creates the error for any other failure to read the data file
func DataUnreadable() *Error {
	return New(ErrDataUnreadable, MsgDataUnreadable, http.StatusInternalServerError)
}

// RouteNotFound creates an unknown route error
func RouteNotFound() *Error {
	return New(ErrRouteNotFound, "Not Found", http.StatusNotFound)
}

// MethodNotAllowed creates a method not allowed error
func MethodNotAllowed() *Error {
	return New(ErrMethodNotAllowed, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// SystemInternal creates an internal server error
func SystemInternal(message string) *Error {
	if message == "" {
		message = "Internal server error"
	}
	return New(ErrSystemInternal, message, http.StatusInternalServerError)
}

// RateLimitGlobal creates a global rate limit error
func RateLimitGlobal() *Error {
	return New(ErrRateLimitGlobal, "Rate limit exceeded - too many requests globally", http.StatusTooManyRequests)
}

// RateLimitIP creates an IP rate limit error
func RateLimitIP() *Error {
	return New(ErrRateLimitIP, "Rate limit exceeded - too many requests from your IP", http.StatusTooManyRequests)
}

// Package envelope builds the uniform response shape used for ad-hoc local
// responses: {success, message|error, data|code, timestamp}. It wraps
// payloads for convenience surfaces outside the direct request/response
// path; it is never used to reinterpret a failed underlying call.
package envelope

import "time"

// Response is the uniform success/error wrapper.
type Response struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Data      any       `json:"data,omitempty"`
	Error     string    `json:"error,omitempty"`
	Code      int       `json:"code,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Success wraps data in a successful envelope. An empty message defaults
// to "Success".
func Success(data any, message string) Response {
	if message == "" {
		message = "Success"
	}
	return Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// Failure wraps an error description in a failed envelope. A zero code
// defaults to 400.
func Failure(errMsg string, code int) Response {
	if code == 0 {
		code = 400
	}
	return Response{
		Success:   false,
		Error:     errMsg,
		Code:      code,
		Timestamp: time.Now().UTC(),
	}
}

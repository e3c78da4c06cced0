// internal/razorpay/errors.go
package razorpay

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is the normalized shape every failed upstream call collapses into.
// Code carries Razorpay's machine-readable error code when one was returned;
// it stays separate from the human-readable description.
type Error struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("razorpay: %s: %s (status %d)", e.Code, e.Description, e.StatusCode)
	}
	return fmt.Sprintf("razorpay: %s (status %d)", e.Description, e.StatusCode)
}

// providerError mirrors Razorpay's error envelope:
// {"error": {"code": "...", "description": "...", ...}}
type providerError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// mapError translates an upstream failure into an Error. status is the
// upstream HTTP status (0 when the call never completed), body the upstream
// response body, transportErr the transport-level error if any. Detail is
// picked in preference order: provider description, generic provider error,
// transport error text, "unknown error".
func mapError(status int, body []byte, transportErr error) *Error {
	e := &Error{StatusCode: http.StatusInternalServerError, Description: "unknown error"}
	if status != 0 {
		e.StatusCode = status
	}

	if len(body) > 0 {
		var pe providerError
		if err := json.Unmarshal(body, &pe); err == nil && pe.Error.Description != "" {
			e.Code = pe.Error.Code
			e.Description = pe.Error.Description
			return e
		}
		e.Description = "payment provider returned an error"
		return e
	}

	if transportErr != nil {
		e.Description = transportErr.Error()
	}
	return e
}

package resolver

import (
	"encoding/json"
	"fmt"

	"authmsg/internal/domain"
)

// APIError is the error body returned by the auth backend:
//
//	{"message": "The given data was invalid.", "errors": {"email": ["..."]}}
type APIError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// ParseAPIError decodes a backend error body. Some endpoints report the
// summary under "error" instead of "message"; both are accepted.
func ParseAPIError(body []byte) (APIError, error) {
	var payload struct {
		Message string              `json:"message"`
		Error   string              `json:"error"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return APIError{}, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	return APIError{Message: msg, Errors: payload.Errors}, nil
}

// FieldErrors returns the first message of each field.
func (e APIError) FieldErrors() map[string]string {
	return FirstErrors(e.Errors)
}

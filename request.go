package admission

import "fmt"

// ResponseFormat selects how generated images are returned.
type ResponseFormat string

const (
	FormatURL     ResponseFormat = "url"
	FormatB64JSON ResponseFormat = "b64_json"
)

// Valid reports whether f is a supported response format.
func (f ResponseFormat) Valid() bool {
	return f == FormatURL || f == FormatB64JSON
}

// ParseResponseFormat converts a client-supplied string.
func ParseResponseFormat(s string) (ResponseFormat, error) {
	f := ResponseFormat(s)
	if !f.Valid() {
		return "", &InvalidFieldError{
			Field:  "response_format",
			Reason: fmt.Sprintf("must be %q or %q, got %q", FormatURL, FormatB64JSON, s),
		}
	}
	return f, nil
}

// GenerationRequest is an inbound generation call as decoded by the HTTP layer.
type GenerationRequest struct {
	Model          string         `json:"model"`
	Prompt         string         `json:"prompt"`
	N              int            `json:"n"`
	Stream         bool           `json:"stream,omitempty"`
	ResponseFormat ResponseFormat `json:"response_format"`
}

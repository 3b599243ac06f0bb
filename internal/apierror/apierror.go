// Package apierror provides the error envelopes written to HTTP clients.
// Internal details (SQL, stack traces) never reach this layer.
package apierror

// APIError is the envelope for all 4xx/5xx responses. Code is stable and
// machine-readable; Detail is meant for people.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func WithCode(code, msg string) *APIError {
	return &APIError{Detail: msg, Code: code}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Code: "validacao", Fields: fields}
}

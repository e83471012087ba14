package backend

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized matches a 401 from the backend: the session token is no longer valid.
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrForbidden matches a 403.
	ErrForbidden = errors.New("backend: forbidden")
	// ErrNotFound matches a 404.
	ErrNotFound = errors.New("backend: not found")
)

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
	Errors  map[string][]string
}

func (e *APIError) Error() string {
	msg := e.Summary("")
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return "backend: " + strings.ToLower(http.StatusText(e.Status)) + ": " + msg
}

// Is lets callers match status classes with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Summary is the text shown to the admin: field errors joined with ", ", otherwise the
// backend message, otherwise fallback. Fields are visited in name order.
func (e *APIError) Summary(fallback string) string {
	if len(e.Errors) > 0 {
		fields := make([]string, 0, len(e.Errors))
		for f := range e.Errors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		var parts []string
		for _, f := range fields {
			parts = append(parts, e.Errors[f]...)
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// Message extracts the admin-facing text from err, or fallback when err is not an APIError.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Summary(fallback)
	}
	return fallback
}

func decodeAPIError(status int, payload []byte) *APIError {
	apiErr := &APIError{Status: status}
	var body struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return apiErr
	}
	apiErr.Message = body.Message
	if apiErr.Message == "" {
		apiErr.Message = body.Error
	}
	if len(body.Errors) > 0 {
		apiErr.Errors = decodeFieldErrors(body.Errors)
	}
	return apiErr
}

// decodeFieldErrors accepts {"field": ["msg"]} and {"field": "msg"}.
func decodeFieldErrors(raw json.RawMessage) map[string][]string {
	var list map[string][]string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var single map[string]string
	if err := json.Unmarshal(raw, &single); err == nil {
		out := make(map[string][]string, len(single))
		for k, v := range single {
			out[k] = []string{v}
		}
		return out
	}
	return nil
}

package llm

import "errors"

// Failure kinds surfaced by the client. Callers branch with errors.Is and
// never see raw backend error text.
var (
	ErrUnauthorized  = errors.New("generation backend rejected the credential")
	ErrUnavailable   = errors.New("generation backend is unavailable")
	ErrTimeout       = errors.New("generation backend timed out")
	ErrEmptyResponse = errors.New("generation backend returned no usable content")
)

// Kind maps a client error to a stable identifier for API responses.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "auth"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	default:
		return "internal"
	}
}

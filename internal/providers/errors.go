package providers

import "errors"

// ErrUnknownProvider is returned by New when the configured provider name
// matches no known endpoint.
var ErrUnknownProvider = errors.New("unknown provider")

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

// IsAuthError checks if an error is or wraps an authentication error, so
// the CLI can map it to a dedicated exit code.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

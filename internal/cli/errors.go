package cli

import (
	"errors"
	"strings"

	"github.com/pkordes/travel-journal/internal/domain"
)

// userError is a failure the user caused and can fix. Its message is printed
// as-is; it is never logged at error level.
type userError struct {
	msg string
}

func (e *userError) Error() string { return e.msg }

func newUserError(msg string) error { return &userError{msg: msg} }

// errUsage marks a malformed command line. Run prints usage and exits 2.
var errUsage = errors.New("usage")

// notFound maps domain.ErrNotFound to a "<what> not found." message and
// passes every other error through. The caller names what was being looked
// up because only the command knows that.
func notFound(err error, what string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return newUserError("⚠ " + what + " not found.")
	}
	return err
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.TripService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	msg := err.Error()
	const marker = domain.ErrValidationText + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// status classifies err for the command log line.
func status(err error) string {
	var ue *userError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errUsage):
		return "usage"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.As(err, &ue):
		return "rejected"
	default:
		return "error"
	}
}

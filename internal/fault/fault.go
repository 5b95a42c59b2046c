// Package fault defines the error categories reported at the process
// boundary: user input errors, configuration/format integrity errors and
// everything else (IO, failed host actions).
package fault

import (
	"errors"
	"fmt"
)

// ErrIntegrity marks misconfiguration or a violated persistence format.
// Such errors are never recovered from; the operator has to run the
// configure step again or fix the files by hand.
var ErrIntegrity = errors.New("integrity error")

// Exit codes returned by the binary.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitIntegrity = 3
)

// UserError reports bad command-line input along with the offending
// argument.
type UserError struct {
	Message string
	Arg     string
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Arg)
}

// NewUserError returns a *UserError for arg.
func NewUserError(message, arg string) error {
	return &UserError{Message: message, Arg: arg}
}

// Integrityf formats an error that wraps ErrIntegrity.
func Integrityf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, fmt.Sprintf(format, args...))
}

// IsIntegrity reports whether err is an integrity error.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsUser reports whether err is a user input error.
func IsUser(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUser(err):
		return ExitUsage
	case IsIntegrity(err):
		return ExitIntegrity
	default:
		return ExitFailure
	}
}

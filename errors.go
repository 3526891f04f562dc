// errors.go
package eclbuild

import (
	"fmt"

	"github.com/arc-language/eclbuild/pkg/descriptor"
	"github.com/arc-language/eclbuild/pkg/platform"
	"github.com/arc-language/eclbuild/pkg/root"
)

var (
	// ErrPlatformNotSupported indicates the platform has no ECLiPSe architecture tag
	ErrPlatformNotSupported = platform.ErrUnsupported

	// ErrRootNotDefined indicates ECLIPSEDIR is unset and prompting is disabled
	ErrRootNotDefined = root.ErrRootNotDefined

	// ErrAttemptsExhausted indicates no valid installation path was supplied in time
	ErrAttemptsExhausted = root.ErrAttemptsExhausted

	// ErrInputClosed indicates the prompt input ended
	ErrInputClosed = root.ErrInputClosed

	// ErrInvalidDescriptor indicates an extension cannot be described
	ErrInvalidDescriptor = descriptor.ErrInvalidInput
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Module string // Extension module if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Module, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

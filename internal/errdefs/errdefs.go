// Package errdefs defines the error kinds raised while computing a topology.
//
// Each kind wraps one of the containerd error classes so callers can test
// for it with errors.Is or the Is* helpers below:
//
//   - Configuration (conflicting plane ownership, bad selectors): ErrInvalidArgument
//   - NotFound (network, bastion, bucket): ErrNotFound
//   - ExternalCall (collaborator error stream or malformed payload): ErrUnavailable
//   - Collision (two node groups claim one resource key): ErrAlreadyExists
//
// None of these are retried. They propagate to main, which prints the
// message and exits non-zero without emitting a document.
package errdefs

import (
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
)

// Configuration returns a ConfigurationError.
func Configuration(format string, args ...any) error {
	return fmt.Errorf("configuration error: %s: %w", fmt.Sprintf(format, args...), cerrdefs.ErrInvalidArgument)
}

// NotFound returns a NotFoundError.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), cerrdefs.ErrNotFound)
}

// ExternalCall returns an ExternalCallError wrapping the underlying cause.
// cause may be nil.
func ExternalCall(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return fmt.Errorf("external call failed: %s: %w", msg, cerrdefs.ErrUnavailable)
	}
	return fmt.Errorf("external call failed: %s: %w: %w", msg, cause, cerrdefs.ErrUnavailable)
}

// Collision returns a CollisionError.
func Collision(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), cerrdefs.ErrAlreadyExists)
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool { return cerrdefs.IsInvalidArgument(err) }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return cerrdefs.IsNotFound(err) }

// IsExternalCall reports whether err is an ExternalCallError.
func IsExternalCall(err error) bool { return cerrdefs.IsUnavailable(err) }

// IsCollision reports whether err is a CollisionError.
func IsCollision(err error) bool { return cerrdefs.IsAlreadyExists(err) }

package input

import (
	"errors"
	"fmt"
)

// ErrPlatformRejected indicates the platform refused a cursor request
// (grab or position set). These failures are attributable to platform
// policy — window not focused, compositor does not support the request —
// and are always recoverable by the caller.
var ErrPlatformRejected = errors.New("platform rejected cursor request")

// platformRejected wraps a platform failure so callers can test it with
// errors.Is(err, ErrPlatformRejected).
func platformRejected(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrPlatformRejected, op, cause)
}

package outcome

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/containerd/errdefs"
)

// Sentinels for the failure kinds that have no direct filesystem
// counterpart. Each one except ErrDivideByZero wraps the errdefs class
// that Classify keys on.
var (
	ErrDivideByZero     = errors.New("division by zero")
	ErrMalformedContent = fmt.Errorf("malformed content: %w", errdefs.ErrDataLoss)
	ErrInvalidOperand   = fmt.Errorf("invalid operand type: %w", errdefs.ErrInvalidArgument)
	ErrOutOfRange       = fmt.Errorf("index out of range: %w", errdefs.ErrOutOfRange)
)

// Malformed marks err as a content parse failure.
func Malformed(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMalformedContent, err)
}

// Classify maps an error onto the taxonomy. Order matters: the more
// specific sentinels are checked before the broad errdefs classes.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, ErrDivideByZero):
		return DivideByZero
	case errdefs.IsNotFound(err), errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errdefs.IsPermissionDenied(err), errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errdefs.IsDataLoss(err):
		return MalformedContent
	case errdefs.IsOutOfRange(err):
		return OutOfRange
	case errdefs.IsInvalidArgument(err):
		return InvalidOperandType
	default:
		return Unclassified
	}
}

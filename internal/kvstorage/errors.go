package kvstorage

import (
	"errors"
	"fmt"

	"my-reboot/internal/fault"
)

// ErrOverflow is returned when an encoded fixed-size block would exceed
// its size. It wraps fault.ErrIntegrity: legal content never gets there.
var ErrOverflow = fmt.Errorf("%w: content exceeds block size", fault.ErrIntegrity)

// IsOverflow reports whether err is (or wraps) ErrOverflow.
func IsOverflow(err error) bool {
	return errors.Is(err, ErrOverflow)
}

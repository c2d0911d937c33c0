package frame

import (
	"errors"
	"fmt"

	"github.com/xaionaro-go/frametransform/types"
)

// ErrInvalidBuffer is returned when a buffer cannot be interpreted as
// an RGBA frame of the declared resolution.
type ErrInvalidBuffer struct {
	Resolution types.Resolution
	Size       uint64
}

func (e ErrInvalidBuffer) Error() string {
	return fmt.Sprintf(
		"invalid frame buffer: %s RGBA requires %d bytes, but got %d",
		e.Resolution, e.Resolution.RGBASize(), e.Size,
	)
}

func IsInvalidBuffer(err error) bool {
	var target ErrInvalidBuffer
	return errors.As(err, &target)
}

// frame.go defines the raw RGBA frame and its conversion into Go's image types.

// Package frame provides the data model for tightly packed RGBA frames.
package frame

import (
	"fmt"
	"image"

	"github.com/xaionaro-go/frametransform/types"
)

// Raw is a frame as received from the host: row-major 8-bit RGBA
// without any padding between rows.
type Raw struct {
	Data       []byte
	Resolution types.Resolution
}

func NewRaw(data []byte, width, height uint32) Raw {
	return Raw{
		Data: data,
		Resolution: types.Resolution{
			Width:  width,
			Height: height,
		},
	}
}

func (f Raw) String() string {
	return fmt.Sprintf("Raw(%s, %d bytes)", f.Resolution, len(f.Data))
}

func (f Raw) Info() Info {
	return Info{
		Width:     f.Resolution.Width,
		Height:    f.Resolution.Height,
		SizeBytes: uint64(len(f.Data)),
	}
}

// Validate checks that Data is exactly one RGBA frame of the declared Resolution.
func (f Raw) Validate() error {
	if !f.Resolution.FitsRGBA(uint64(len(f.Data))) {
		return ErrInvalidBuffer{
			Resolution: f.Resolution,
			Size:       uint64(len(f.Data)),
		}
	}
	return nil
}

// ToImage interprets Data as a pixel grid. The returned image shares
// memory with Data, so it must not be modified in place.
func (f Raw) ToImage() (*image.RGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	w, h := int(f.Resolution.Width), int(f.Resolution.Height)
	return &image.RGBA{
		Pix:    f.Data,
		Stride: w * types.BytesPerPixel,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

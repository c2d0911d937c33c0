package types

import (
	"fmt"
)

// BytesPerPixel is the size of a single tightly packed RGBA pixel.
const BytesPerPixel = 4

type Resolution struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

func (r *Resolution) Parse(s string) error {
	var parsed Resolution
	_, err := fmt.Sscanf(s, "%dx%d", &parsed.Width, &parsed.Height)
	if err != nil {
		return fmt.Errorf("unable to parse resolution '%s': %w", s, err)
	}
	*r = parsed
	return nil
}

// Set implements pflag.Value.
func (r *Resolution) Set(s string) error {
	return r.Parse(s)
}

// Type implements pflag.Value.
func (r *Resolution) Type() string {
	return "resolution"
}

func (r Resolution) PixelCount() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// RGBASize returns the amount of bytes a tightly packed RGBA frame
// of this resolution occupies.
//
// The result wraps around for resolutions above ~2^62 pixels, use
// FitsRGBA to check a buffer length instead.
func (r Resolution) RGBASize() uint64 {
	return r.PixelCount() * BytesPerPixel
}

// FitsRGBA reports whether a buffer of the given length is exactly one
// tightly packed RGBA frame of this resolution.
func (r Resolution) FitsRGBA(size uint64) bool {
	if size%BytesPerPixel != 0 {
		return false
	}
	return size/BytesPerPixel == r.PixelCount()
}

func (r Resolution) IsZero() bool {
	return r.Width == 0 || r.Height == 0
}

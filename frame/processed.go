package frame

import (
	"fmt"
	"image"

	"github.com/xaionaro-go/frametransform/types"
)

// Processed is the result of a transform. Data is always a fresh
// allocation owned by the caller.
type Processed struct {
	Data   []byte
	Width  uint32
	Height uint32
}

// ProcessedFromImage serializes img into a new tightly packed RGBA buffer.
func ProcessedFromImage(img *image.RGBA) *Processed {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rowSize := w * types.BytesPerPixel
	data := make([]byte, rowSize*h)
	for y := 0; y < h; y++ {
		srcOffset := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(data[y*rowSize:(y+1)*rowSize], img.Pix[srcOffset:srcOffset+rowSize])
	}
	return &Processed{
		Data:   data,
		Width:  uint32(w),
		Height: uint32(h),
	}
}

func (p *Processed) Resolution() types.Resolution {
	return types.Resolution{Width: p.Width, Height: p.Height}
}

// AsRaw returns a Raw frame sharing the memory of p, so that
// the result could be fed into another transform.
func (p *Processed) AsRaw() Raw {
	return Raw{
		Data:       p.Data,
		Resolution: p.Resolution(),
	}
}

func (p *Processed) String() string {
	if p == nil {
		return "Processed(<nil>)"
	}
	return fmt.Sprintf("Processed(%s, %d bytes)", p.Resolution(), len(p.Data))
}

// ProcessedFromOwnedImage is like ProcessedFromImage, but takes over
// img.Pix when it is already tightly packed. img must not be used
// by the caller afterwards.
func ProcessedFromOwnedImage(img *image.RGBA) *Processed {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	size := w * h * types.BytesPerPixel
	if img.Stride != w*types.BytesPerPixel || img.PixOffset(b.Min.X, b.Min.Y) != 0 || len(img.Pix) != size || img.Pix == nil {
		return ProcessedFromImage(img)
	}
	return &Processed{
		Data:   img.Pix,
		Width:  uint32(w),
		Height: uint32(h),
	}
}

package transform

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/frametransform/frame"
	"go.uber.org/atomic"
)

// Brightness adds Value to the color channels of every pixel.
// Value may be changed while frames are being transformed.
type Brightness struct {
	Value atomic.Int32
}

var _ Abstract = (*Brightness)(nil)

func NewBrightness(value int32) *Brightness {
	b := &Brightness{}
	b.Value.Store(value)
	return b
}

func (b *Brightness) SetValue(value int32) {
	b.Value.Store(value)
}

func (b *Brightness) String() string {
	return fmt.Sprintf("Brightness(%+d)", b.Value.Load())
}

func (b *Brightness) Transform(
	ctx context.Context,
	in frame.Raw,
) (*frame.Processed, error) {
	return ApplyBrightness(ctx, in.Data, in.Resolution.Width, in.Resolution.Height, b.Value.Load())
}

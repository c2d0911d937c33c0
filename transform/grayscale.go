package transform

import (
	"context"

	"github.com/xaionaro-go/frametransform/frame"
)

type Grayscale struct{}

var _ Abstract = (*Grayscale)(nil)

func NewGrayscale() *Grayscale {
	return &Grayscale{}
}

func (g *Grayscale) String() string {
	return "Grayscale"
}

func (g *Grayscale) Transform(
	ctx context.Context,
	in frame.Raw,
) (*frame.Processed, error) {
	return ApplyGrayscale(ctx, in.Data, in.Resolution.Width, in.Resolution.Height)
}

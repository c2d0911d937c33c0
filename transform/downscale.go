package transform

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/frametransform/frame"
)

// Downscale is the Abstract form of ProcessFrame.
type Downscale struct{}

var _ Abstract = (*Downscale)(nil)

func NewDownscale() *Downscale {
	return &Downscale{}
}

func (d *Downscale) String() string {
	return fmt.Sprintf("Downscale(>%d -> %s)", DownscaleThresholdWidth, downscaleResolution())
}

func (d *Downscale) Transform(
	ctx context.Context,
	in frame.Raw,
) (*frame.Processed, error) {
	return ProcessFrame(ctx, in.Data, in.Resolution.Width, in.Resolution.Height)
}

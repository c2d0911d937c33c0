// transform.go implements the per-frame operations on top of bild.

// Package transform provides stateless RGBA frame transformations:
// conditional downscaling, grayscale conversion and brightness adjustment.
//
// Every function is safe for concurrent use and never modifies or
// retains the input buffer.
package transform

import (
	"context"
	"fmt"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	bildtransform "github.com/anthonynsimon/bild/transform"
	"github.com/xaionaro-go/frametransform/frame"
	"github.com/xaionaro-go/frametransform/logger"
	"github.com/xaionaro-go/frametransform/types"
)

const (
	// DownscaleThresholdWidth is the widest frame ProcessFrame passes through untouched.
	DownscaleThresholdWidth = 1920

	// DownscaleWidth and DownscaleHeight are what ProcessFrame resizes wide frames to.
	// Only the width decides whether a frame is resized; the aspect ratio is not kept.
	DownscaleWidth  = 1920
	DownscaleHeight = 1080
)

// Rec. 709 luma weights in units of 1/LumaWeightScale; the weighted sum is truncated.
const (
	LumaWeightR     = 2126
	LumaWeightG     = 7152
	LumaWeightB     = 722
	LumaWeightScale = LumaWeightR + LumaWeightG + LumaWeightB
)

func downscaleResolution() types.Resolution {
	return types.Resolution{Width: DownscaleWidth, Height: DownscaleHeight}
}

// GetFrameInfo reports the metadata of a frame without validating it.
func GetFrameInfo(data []byte, width, height uint32) frame.Info {
	return frame.NewRaw(data, width, height).Info()
}

func ProcessFrame(
	ctx context.Context,
	data []byte,
	width, height uint32,
) (_ret *frame.Processed, _err error) {
	logger.Tracef(ctx, "ProcessFrame(%dx%d)", width, height)
	defer func() { logger.Tracef(ctx, "/ProcessFrame(%dx%d): %v %v", width, height, _ret, _err) }()
	return processFrame(ctx, frame.NewRaw(data, width, height))
}

func processFrame(
	ctx context.Context,
	in frame.Raw,
) (*frame.Processed, error) {
	img, err := in.ToImage()
	if err != nil {
		return nil, fmt.Errorf("unable to build the image to process: %w", err)
	}

	if in.Resolution.IsZero() {
		return emptyProcessed(in.Resolution), nil
	}
	if in.Resolution.Width <= DownscaleThresholdWidth {
		return frame.ProcessedFromImage(img), nil
	}

	logger.Debugf(ctx, "downscaling %s to %s", in.Resolution, downscaleResolution())
	resized := bildtransform.Resize(
		img,
		DownscaleWidth,
		DownscaleHeight,
		bildtransform.Lanczos,
	)
	return frame.ProcessedFromOwnedImage(resized), nil
}

func ApplyGrayscale(
	ctx context.Context,
	data []byte,
	width, height uint32,
) (_ret *frame.Processed, _err error) {
	logger.Tracef(ctx, "ApplyGrayscale(%dx%d)", width, height)
	defer func() { logger.Tracef(ctx, "/ApplyGrayscale(%dx%d): %v %v", width, height, _ret, _err) }()
	return applyGrayscale(ctx, frame.NewRaw(data, width, height))
}

func applyGrayscale(
	_ context.Context,
	in frame.Raw,
) (*frame.Processed, error) {
	img, err := in.ToImage()
	if err != nil {
		return nil, fmt.Errorf("unable to build the image to convert to grayscale: %w", err)
	}
	if in.Resolution.IsZero() {
		return emptyProcessed(in.Resolution), nil
	}

	gray := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		l := luma(c.R, c.G, c.B)
		return color.RGBA{R: l, G: l, B: l, A: c.A}
	})
	return frame.ProcessedFromOwnedImage(gray), nil
}

func luma(r, g, b uint8) uint8 {
	return uint8((LumaWeightR*uint32(r) + LumaWeightG*uint32(g) + LumaWeightB*uint32(b)) / LumaWeightScale)
}

func ApplyBrightness(
	ctx context.Context,
	data []byte,
	width, height uint32,
	value int32,
) (_ret *frame.Processed, _err error) {
	logger.Tracef(ctx, "ApplyBrightness(%dx%d, %d)", width, height, value)
	defer func() { logger.Tracef(ctx, "/ApplyBrightness(%dx%d, %d): %v %v", width, height, value, _ret, _err) }()
	return applyBrightness(ctx, frame.NewRaw(data, width, height), value)
}

func applyBrightness(
	_ context.Context,
	in frame.Raw,
	value int32,
) (*frame.Processed, error) {
	img, err := in.ToImage()
	if err != nil {
		return nil, fmt.Errorf("unable to build the image to adjust brightness of: %w", err)
	}
	if in.Resolution.IsZero() {
		return emptyProcessed(in.Resolution), nil
	}

	var lookup [256]uint8
	for i := range lookup {
		lookup[i] = clampUint8(int64(i) + int64(value))
	}
	brightened := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		return color.RGBA{R: lookup[c.R], G: lookup[c.G], B: lookup[c.B], A: c.A}
	})
	return frame.ProcessedFromOwnedImage(brightened), nil
}

func clampUint8(v int64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}

// emptyProcessed keeps the declared resolution of a zero-sized frame,
// which bild would collapse to 0x0.
func emptyProcessed(res types.Resolution) *frame.Processed {
	return &frame.Processed{
		Data:   []byte{},
		Width:  res.Width,
		Height: res.Height,
	}
}

package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/frametransform/frame"
	"github.com/xaionaro-go/frametransform/logger"
)

// Sequence applies the transformers one after another to the same frame.
type Sequence []Abstract

var _ Abstract = (Sequence)(nil)

func NewSequence(transformers ...Abstract) Sequence {
	return Sequence(transformers)
}

func (s Sequence) String() string {
	var parts []string
	for _, t := range s {
		parts = append(parts, t.String())
	}
	return fmt.Sprintf("Sequence(%s)", strings.Join(parts, " -> "))
}

func (s Sequence) Transform(
	ctx context.Context,
	in frame.Raw,
) (_ret *frame.Processed, _err error) {
	logger.Tracef(ctx, "Transform: %s", s)
	defer func() { logger.Tracef(ctx, "/Transform: %s: %v %v", s, _ret, _err) }()

	if len(s) == 0 {
		img, err := in.ToImage()
		if err != nil {
			return nil, err
		}
		return frame.ProcessedFromImage(img), nil
	}

	cur := in
	var out *frame.Processed
	for idx, t := range s {
		var err error
		out, err = t.Transform(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("transformer #%d (%s) failed: %w", idx, t, err)
		}
		cur = out.AsRaw()
	}
	return out, nil
}

// abstract.go defines the Abstract interface for frame transformers.

package transform

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/frametransform/frame"
)

type Abstract interface {
	fmt.Stringer
	Transform(context.Context, frame.Raw) (*frame.Processed, error)
}

package frame

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/frametransform/types"
)

// Info is the metadata reported about a frame. SizeBytes is whatever
// the caller passed and is not checked against Width and Height.
type Info struct {
	Width     uint32
	Height    uint32
	SizeBytes uint64
}

func (i Info) Resolution() types.Resolution {
	return types.Resolution{Width: i.Width, Height: i.Height}
}

func (i Info) ExpectedSizeBytes() uint64 {
	return i.Resolution().RGBASize()
}

func (i Info) IsConsistent() bool {
	return i.Resolution().FitsRGBA(i.SizeBytes)
}

func (i Info) String() string {
	return fmt.Sprintf("%s (%s)", i.Resolution(), humanize.Bytes(i.SizeBytes))
}

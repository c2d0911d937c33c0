package frame

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/frametransform/types"
)

func TestRawToImage(t *testing.T) {
	data := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	img, err := NewRaw(data, 2, 2).ToImage()
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	require.Equal(t, 8, img.Stride)

	c := img.RGBAAt(1, 1)
	assert.Equal(t, []uint8{13, 14, 15, 16}, []uint8{c.R, c.G, c.B, c.A})
}

func TestRawToImageInvalidBuffer(t *testing.T) {
	for _, tc := range []struct {
		width, height uint32
		size          int
	}{
		{10, 10, 50},
		{10, 10, 401},
		{2, 1, 0},
		{0, 1, 4},
		{1, 0, 4},
	} {
		t.Run(fmt.Sprintf("%dx%d_%d", tc.width, tc.height, tc.size), func(t *testing.T) {
			img, err := NewRaw(make([]byte, tc.size), tc.width, tc.height).ToImage()
			require.Error(t, err)
			require.Nil(t, img)
			require.True(t, IsInvalidBuffer(err))

			var errInvalid ErrInvalidBuffer
			require.ErrorAs(t, err, &errInvalid)
			require.Equal(t, types.Resolution{Width: tc.width, Height: tc.height}, errInvalid.Resolution)
			require.Equal(t, uint64(tc.size), errInvalid.Size)
		})
	}
}

func TestRawToImageZeroSized(t *testing.T) {
	img, err := NewRaw(nil, 0, 0).ToImage()
	require.NoError(t, err)
	require.True(t, img.Bounds().Empty())
}

func TestErrInvalidBufferMessage(t *testing.T) {
	err := ErrInvalidBuffer{
		Resolution: types.Resolution{Width: 10, Height: 10},
		Size:       50,
	}
	require.Equal(t, "invalid frame buffer: 10x10 RGBA requires 400 bytes, but got 50", err.Error())
	require.True(t, IsInvalidBuffer(fmt.Errorf("wrapped: %w", err)))
	require.False(t, IsInvalidBuffer(fmt.Errorf("something else")))
}

func TestInfo(t *testing.T) {
	info := NewRaw(make([]byte, 50), 10, 10).Info()
	require.Equal(t, Info{Width: 10, Height: 10, SizeBytes: 50}, info)
	require.Equal(t, uint64(400), info.ExpectedSizeBytes())
	require.False(t, info.IsConsistent())
	require.Equal(t, "10x10 (50 B)", info.String())

	info = NewRaw(make([]byte, 3840*2160*4), 3840, 2160).Info()
	require.True(t, info.IsConsistent())
	require.Equal(t, "3840x2160 (33 MB)", info.String())
}

func TestProcessedFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}

	// a sub-image has a stride wider than its row
	sub := img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	p := ProcessedFromImage(sub)
	require.Equal(t, uint32(2), p.Width)
	require.Equal(t, uint32(2), p.Height)
	require.Equal(t, []byte{
		20, 21, 22, 23, 24, 25, 26, 27,
		36, 37, 38, 39, 40, 41, 42, 43,
	}, p.Data)

	p.Data[0] = 255
	require.Equal(t, uint8(20), img.Pix[20])
}

func TestProcessedAsRaw(t *testing.T) {
	p := &Processed{Data: make([]byte, 8), Width: 2, Height: 1}
	raw := p.AsRaw()
	require.NoError(t, raw.Validate())
	require.Equal(t, types.Resolution{Width: 2, Height: 1}, raw.Resolution)
	require.Equal(t, "Processed(2x1, 8 bytes)", p.String())
}

func TestProcessedFromOwnedImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	p := ProcessedFromOwnedImage(img)
	require.Len(t, p.Data, 16)
	require.Same(t, &img.Pix[0], &p.Data[0])

	sub := img.SubImage(image.Rect(1, 0, 2, 2)).(*image.RGBA)
	p = ProcessedFromOwnedImage(sub)
	require.Len(t, p.Data, 8)
	require.NotSame(t, &img.Pix[4], &p.Data[0])

	p = ProcessedFromOwnedImage(&image.RGBA{})
	require.NotNil(t, p.Data)
	require.Empty(t, p.Data)
}

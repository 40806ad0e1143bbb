package frame

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/overlaypipeline/types"
)

func TestFrameGetters(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	input := BuildInput(img, 0, 60, 1, types.Fraction{Num: 1, Den: 30})

	require.Equal(t, 320, input.GetWidth())
	require.Equal(t, 240, input.GetHeight())
	require.Equal(t, len(img.Pix), input.GetSize())
	require.Equal(t, int64(60), input.GetPTS())
	require.Equal(t, 2*time.Second, input.GetPTSAsDuration())

	output := Output(input)
	require.Equal(t, input, output.ToInput())
}

func TestFrameNilImage(t *testing.T) {
	var f Input
	require.Equal(t, 0, f.GetSize())
	require.Equal(t, 0, f.GetWidth())
	require.Equal(t, 0, f.GetHeight())
}

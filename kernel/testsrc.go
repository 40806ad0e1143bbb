package kernel

import (
	"context"
	"fmt"
	"image"

	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/helpers/closuresignaler"
	"github.com/xaionaro-go/overlaypipeline/logger"
	"github.com/xaionaro-go/overlaypipeline/types"
)

// VideoTestSource generates a fixed amount of moving-gradient frames,
// so a pipeline can be exercised without any capture device.
type VideoTestSource struct {
	*closuresignaler.ClosureSignaler
	Width       int
	Height      int
	FrameRate   types.Fraction
	FramesCount uint64
}

var _ Abstract = (*VideoTestSource)(nil)

func NewVideoTestSource(
	width int,
	height int,
	frameRate types.Fraction,
	framesCount uint64,
) *VideoTestSource {
	return &VideoTestSource{
		ClosureSignaler: closuresignaler.New(),
		Width:           width,
		Height:          height,
		FrameRate:       frameRate,
		FramesCount:     framesCount,
	}
}

func (k *VideoTestSource) String() string {
	return fmt.Sprintf("VideoTestSource(%dx%d@%s)", k.Width, k.Height, k.FrameRate)
}

func (k *VideoTestSource) SendInputFrame(
	ctx context.Context,
	input frame.Input,
	outputCh chan<- frame.Output,
) error {
	return fmt.Errorf("a test source accepts no input")
}

func (k *VideoTestSource) Generate(
	ctx context.Context,
	outputCh chan<- frame.Output,
) (_err error) {
	logger.Tracef(ctx, "Generate")
	defer func() { logger.Tracef(ctx, "/Generate: %v", _err) }()

	if !k.FrameRate.IsValid() || k.FrameRate.Num == 0 {
		return fmt.Errorf("invalid frame rate: %s", k.FrameRate)
	}
	timeBase := k.FrameRate.Reverse()

	for frameIdx := uint64(0); frameIdx < k.FramesCount; frameIdx++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-k.CloseChan():
			return nil
		default:
		}

		output := frame.Output{
			Image:    k.generateImage(frameIdx),
			PTS:      int64(frameIdx),
			Duration: 1,
			TimeBase: timeBase,
		}
		select {
		case outputCh <- output:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (k *VideoTestSource) generateImage(frameIdx uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, k.Width, k.Height))
	shift := uint8(frameIdx * 8)
	for y := 0; y < k.Height; y++ {
		for x := 0; x < k.Width; x++ {
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = uint8(x) + shift
			img.Pix[offset+1] = uint8(y) + shift
			img.Pix[offset+2] = uint8(x+y) - shift
			img.Pix[offset+3] = 0xFF
		}
	}
	return img
}

func (k *VideoTestSource) Close(ctx context.Context) error {
	k.ClosureSignaler.Close(ctx)
	return nil
}

package kernel

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/helpers/closuresignaler"
	"github.com/xaionaro-go/overlaypipeline/logger"
	"github.com/xaionaro-go/overlaypipeline/types"
	"go.uber.org/atomic"
)

// ImageWriter stores every inbound frame as a numbered PNG file in Dir
// and forwards the frame unchanged downstream.
type ImageWriter struct {
	*closuresignaler.ClosureSignaler
	Dir     string
	Pattern string

	types.CommonsProcessingStatistics
	nextIdx atomic.Uint64
}

var _ Abstract = (*ImageWriter)(nil)

func NewImageWriter(dir string) *ImageWriter {
	return &ImageWriter{
		ClosureSignaler: closuresignaler.New(),
		Dir:             dir,
		Pattern:         "frame_%06d.png",
	}
}

func (k *ImageWriter) String() string {
	return fmt.Sprintf("ImageWriter(%s)", k.Dir)
}

func (k *ImageWriter) SendInputFrame(
	ctx context.Context,
	input frame.Input,
	outputCh chan<- frame.Output,
) (_err error) {
	logger.Tracef(ctx, "SendInputFrame")
	defer func() { logger.Tracef(ctx, "/SendInputFrame: %v", _err) }()

	if k.IsClosed() {
		return ErrClosed{Kernel: k}
	}

	k.FramesRead.Add(1)
	k.BytesRead.Add(uint64(input.GetSize()))

	path := filepath.Join(k.Dir, fmt.Sprintf(k.Pattern, k.nextIdx.Inc()-1))
	if err := imgio.Save(path, input.Image, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("unable to save the frame to '%s': %w", path, err)
	}

	k.FramesWrote.Add(1)
	k.BytesWrote.Add(uint64(input.GetSize()))

	select {
	case outputCh <- frame.Output(input):
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (k *ImageWriter) Generate(
	ctx context.Context,
	outputCh chan<- frame.Output,
) error {
	return nil
}

func (k *ImageWriter) Close(ctx context.Context) error {
	k.ClosureSignaler.Close(ctx)
	return nil
}

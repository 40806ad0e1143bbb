package kernel

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/helpers/closuresignaler"
	"github.com/xaionaro-go/overlaypipeline/logger"
	"github.com/xaionaro-go/overlaypipeline/textoverlay"
	"github.com/xaionaro-go/overlaypipeline/types"
)

// Overlay is the kernel that hosts a text overlay element: every
// inbound frame gets the element's current text composited onto it and
// is forwarded downstream.
type Overlay struct {
	*closuresignaler.ClosureSignaler
	Element textoverlay.Element
	types.CommonsProcessingStatistics
}

var _ Abstract = (*Overlay)(nil)

func NewOverlay(element textoverlay.Element) *Overlay {
	return &Overlay{
		ClosureSignaler: closuresignaler.New(),
		Element:         element,
	}
}

func (k *Overlay) String() string {
	return fmt.Sprintf("Overlay(%s)", k.Element)
}

func (k *Overlay) SendInputFrame(
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

	if err := k.Element.TextOverlay().Render(ctx, input); err != nil {
		return fmt.Errorf("unable to render the overlay onto the frame: %w", err)
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

func (k *Overlay) Generate(
	ctx context.Context,
	outputCh chan<- frame.Output,
) error {
	return nil
}

func (k *Overlay) Close(ctx context.Context) error {
	k.ClosureSignaler.Close(ctx)
	return nil
}

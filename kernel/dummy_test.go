// dummy_test.go contains a callback-backed kernel for tests.

package kernel

import (
	"context"

	"github.com/xaionaro-go/overlaypipeline/frame"
)

type Dummy struct {
	SendInputFrameFn func(
		ctx context.Context,
		input frame.Input,
		outputCh chan<- frame.Output,
	) error
	SendInputFrameCallCount int

	GenerateFn func(
		ctx context.Context,
		outputCh chan<- frame.Output,
	) error
	GenerateCallCount int

	CloseFn        func(context.Context) error
	CloseCallCount int
}

var _ Abstract = (*Dummy)(nil)

func (d *Dummy) SendInputFrame(
	ctx context.Context,
	input frame.Input,
	outputCh chan<- frame.Output,
) error {
	d.SendInputFrameCallCount++
	if d.SendInputFrameFn == nil {
		return nil
	}
	return d.SendInputFrameFn(ctx, input, outputCh)
}

func (d *Dummy) String() string {
	return "Dummy"
}

func (d *Dummy) Generate(
	ctx context.Context,
	outputCh chan<- frame.Output,
) error {
	d.GenerateCallCount++
	if d.GenerateFn == nil {
		return nil
	}
	return d.GenerateFn(ctx, outputCh)
}

func (d *Dummy) Close(ctx context.Context) error {
	d.CloseCallCount++
	if d.CloseFn == nil {
		return nil
	}
	return d.CloseFn(ctx)
}

func (d *Dummy) CloseChan() <-chan struct{} {
	return nil
}

// Package kernel contains the processing stages a pipeline is built of:
// frame sources, the overlay stage which hosts a text overlay element,
// and frame sinks.
package kernel

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/overlaypipeline/frame"
)

type Abstract interface {
	fmt.Stringer
	SendInputFramer
	Generator
	Closer
	CloseChaner
}

type SendInputFramer interface {
	SendInputFrame(
		ctx context.Context,
		input frame.Input,
		outputCh chan<- frame.Output,
	) error
}

type Generator interface {
	Generate(
		ctx context.Context,
		outputCh chan<- frame.Output,
	) error
}

type Closer interface {
	Close(ctx context.Context) error
}

type CloseChaner interface {
	CloseChan() <-chan struct{}
}

// Package overlaypipeline runs chains of frame-processing kernels: a
// source generating (or receiving) decoded video frames, overlay stages
// stamping text onto them, and sinks.
package overlaypipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/kernel"
	"github.com/xaionaro-go/overlaypipeline/logger"
)

const pipelineChanSize = 100

// Pipeline is a linear chain of kernels. Frames flow from the first
// kernel's Generate through every following kernel's SendInputFrame.
type Pipeline struct {
	Kernels []kernel.Abstract

	// OnOutput (optional) observes every frame leaving the last kernel.
	OnOutput func(ctx context.Context, output frame.Output)
}

func New(kernels ...kernel.Abstract) *Pipeline {
	return &Pipeline{
		Kernels: kernels,
	}
}

func (p *Pipeline) String() string {
	names := make([]string, 0, len(p.Kernels))
	for _, k := range p.Kernels {
		names = append(names, k.String())
	}
	return fmt.Sprintf("Pipeline(%s)", strings.Join(names, " -> "))
}

// Serve runs the pipeline until the first kernel's Generate returns and
// every in-flight frame got through, then returns the joined errors (if
// any).
func (p *Pipeline) Serve(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Serve[%s]", p)
	defer func() { logger.Debugf(ctx, "/Serve[%s]: %v", p, _err) }()

	if len(p.Kernels) == 0 {
		return fmt.Errorf("the pipeline is empty")
	}

	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	errCh := make(chan error, len(p.Kernels)+1)
	var wg sync.WaitGroup

	chans := make([]chan frame.Output, len(p.Kernels))
	for idx := range chans {
		chans[idx] = make(chan frame.Output, pipelineChanSize)
	}

	// every kernel forwards the previous kernel's outputs
	for idx := 1; idx < len(p.Kernels); idx++ {
		k := p.Kernels[idx]
		inputCh, outputCh := chans[idx-1], chans[idx]
		wg.Add(1)
		observability.Go(ctx, func(ctx context.Context) {
			defer wg.Done()
			defer close(outputCh)
			for output := range inputCh {
				err := k.SendInputFrame(ctx, output.ToInput(), outputCh)
				if err != nil {
					errCh <- fmt.Errorf("unable to send a frame to %s: %w", k, err)
					cancelFn()
					return
				}
			}
		})
	}

	// the last channel feeds the observer (or the void)
	wg.Add(1)
	observability.Go(ctx, func(ctx context.Context) {
		defer wg.Done()
		for output := range chans[len(chans)-1] {
			if p.OnOutput != nil {
				p.OnOutput(ctx, output)
			}
		}
	})

	head := p.Kernels[0]
	err := head.Generate(ctx, chans[0])
	close(chans[0])
	if err != nil {
		errCh <- fmt.Errorf("unable to generate from %s: %w", head, err)
		cancelFn()
	}

	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		if err == nil {
			continue
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Close closes every kernel of the pipeline.
func (p *Pipeline) Close(ctx context.Context) error {
	var errs []error
	for idx, k := range p.Kernels {
		if err := k.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("unable to close kernel#%d:%s: %w", idx, k, err))
		}
	}
	return errors.Join(errs...)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/overlaypipeline"
	"github.com/xaionaro-go/overlaypipeline/clockoverlay"
	"github.com/xaionaro-go/overlaypipeline/epochoverlay"
	"github.com/xaionaro-go/overlaypipeline/kernel"
	"github.com/xaionaro-go/overlaypipeline/registry"
	"github.com/xaionaro-go/overlaypipeline/types"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s <output-dir>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	elementName := pflag.String("element", epochoverlay.Name, "the overlay element to stamp frames with")
	width := pflag.Uint("width", 640, "frame width")
	height := pflag.Uint("height", 360, "frame height")
	fps := pflag.Uint("fps", 30, "frame rate")
	framesCount := pflag.Uint64("frames", 90, "the amount of frames to generate")
	configPath := pflag.String("config", "", "a YAML file with overlay properties")
	pflag.Parse()
	if len(pflag.Args()) != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(context.Context) { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	outputDir := pflag.Arg(0)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		l.Fatalf("unable to create the output directory '%s': %v", outputDir, err)
	}

	for _, register := range []func(context.Context) error{
		epochoverlay.Register,
		clockoverlay.Register,
	} {
		if err := register(ctx); err != nil {
			l.Fatalf("unable to register an element type: %v", err)
		}
	}

	element, err := registry.New(ctx, *elementName)
	if err != nil {
		l.Fatalf("unable to construct element '%s' (have: %v): %v", *elementName, registry.Names(ctx), err)
	}

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			l.Fatalf("unable to load the config from '%s': %v", *configPath, err)
		}
		if err := cfg.applyTo(ctx, element); err != nil {
			l.Fatalf("unable to apply the config: %v", err)
		}
	}

	src := kernel.NewVideoTestSource(
		int(*width), int(*height),
		types.Fraction{Num: int(*fps), Den: 1},
		*framesCount,
	)
	overlay := kernel.NewOverlay(element)
	writer := kernel.NewImageWriter(outputDir)

	p := overlaypipeline.New(src, overlay, writer)
	if err := p.Serve(ctx); err != nil {
		l.Fatalf("the pipeline failed: %v", err)
	}
	if err := p.Close(ctx); err != nil {
		l.Errorf("unable to close the pipeline: %v", err)
	}

	l.Infof("done: %s", overlay.GetStats())
}

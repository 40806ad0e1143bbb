// Package clockoverlay implements an overlay element which stamps the
// current wall-clock time, formatted as human-readable text, onto every
// passing video frame.
package clockoverlay

import (
	"context"
	"fmt"
	"time"

	"github.com/xaionaro-go/overlaypipeline/clock"
	"github.com/xaionaro-go/overlaypipeline/epochoverlay"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/registry"
	"github.com/xaionaro-go/overlaypipeline/textoverlay"
	"github.com/xaionaro-go/overlaypipeline/types"
	"github.com/xaionaro-go/xsync"
)

// Name is the element type name in the registry.
const Name = "clockoverlay"

// DefaultTimeFormat is the strftime-style format rendered until the
// `time-format` property is set.
const DefaultTimeFormat = "%H:%M:%S"

// ClockOverlay renders the current local time. TimeFormat is its one
// custom property (`time-format`), exposed through the base overlay's
// property surface.
type ClockOverlay struct {
	Overlay *textoverlay.Overlay
	Clock   clock.Clock

	Locker     xsync.Mutex
	TimeFormat string
	layout     string
}

var _ textoverlay.Element = (*ClockOverlay)(nil)
var _ textoverlay.TextSource = (*ClockOverlay)(nil)
var _ textoverlay.PropertyExtension = (*ClockOverlay)(nil)

func New(ctx context.Context) *ClockOverlay {
	e := &ClockOverlay{
		Overlay:    textoverlay.New(),
		Clock:      clock.System,
		TimeFormat: DefaultTimeFormat,
		layout:     mustLayout(DefaultTimeFormat),
	}
	e.Overlay.VAlign = types.VAlignBottom
	e.Overlay.HAlign = types.HAlignLeft
	e.Overlay.SetTextSource(e)
	e.Overlay.Extension = e
	return e
}

func (e *ClockOverlay) String() string {
	return "ClockOverlay"
}

func (e *ClockOverlay) TextOverlay() *textoverlay.Overlay {
	return e.Overlay
}

// ProvideText implements textoverlay.TextSource.
func (e *ClockOverlay) ProvideText(ctx context.Context, _ frame.Input) string {
	// the text only changes once a second, but the frame underneath it
	// changes every cycle
	defer e.Overlay.ForceRerender()

	sec, usec, err := e.Clock.GetTimeOfDay()
	if err != nil {
		return epochoverlay.TextClockReadFailed
	}
	return time.Unix(sec, usec*1000).Local().Format(e.layout)
}

// TrySetProperty implements textoverlay.PropertyExtension. It runs with
// the overlay's instance lock held, hence the separate Locker around
// the element's own fields.
func (e *ClockOverlay) TrySetProperty(ctx context.Context, name string, value any) (bool, error) {
	if name != "time-format" {
		return false, nil
	}
	format, ok := value.(string)
	if !ok {
		return true, textoverlay.ErrInvalidPropertyValue{
			Name: name, Value: value, Err: fmt.Errorf("unexpected type %T", value),
		}
	}
	layout, err := strftimeToLayout(format)
	if err != nil {
		return true, textoverlay.ErrInvalidPropertyValue{Name: name, Value: value, Err: err}
	}
	e.Locker.Do(ctx, func() {
		e.TimeFormat = format
		e.layout = layout
	})
	return true, nil
}

// TryGetProperty implements textoverlay.PropertyExtension.
func (e *ClockOverlay) TryGetProperty(ctx context.Context, name string) (any, bool, error) {
	if name != "time-format" {
		return nil, false, nil
	}
	return xsync.DoR1(ctx, &e.Locker, func() string {
		return e.TimeFormat
	}), true, nil
}

// ClassInit applies the same font/text-direction defaults as the epoch
// element: both types share the one rendering context.
func ClassInit(ctx context.Context) {
	epochoverlay.ClassInit(ctx)
}

// Register adds the element type to the catalog.
func Register(ctx context.Context) error {
	return registry.Register(ctx, &registry.Registration{
		Metadata: types.ElementMetadata{
			Name:           Name,
			Classification: "Filter/Editor/Video",
			Description:    "Overlays the current clock time on a video stream",
			Author:         "Tim-Philipp Müller <tim@centricular.net>",
		},
		ClassInit: ClassInit,
		NewFunc: func(ctx context.Context) (textoverlay.Element, error) {
			return New(ctx), nil
		},
	})
}

func mustLayout(format string) string {
	layout, err := strftimeToLayout(format)
	if err != nil {
		panic(err)
	}
	return layout
}

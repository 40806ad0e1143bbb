// Package epochoverlay implements an overlay element which stamps the
// current wall-clock time, expressed as microseconds since the Unix
// epoch, onto every passing video frame.
package epochoverlay

import (
	"context"
	"strconv"

	"github.com/xaionaro-go/overlaypipeline/clock"
	"github.com/xaionaro-go/overlaypipeline/fontctx"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/registry"
	"github.com/xaionaro-go/overlaypipeline/textoverlay"
	"github.com/xaionaro-go/overlaypipeline/types"
)

// Name is the element type name in the registry.
const Name = "epochoverlay"

// TextClockReadFailed is what gets rendered when the wall clock could
// not be read.
const TextClockReadFailed = "gettimeofday failed"

// EpochOverlay renders the current epoch time in microseconds. It keeps
// no state between render cycles: every cycle reads the clock anew and
// forces a re-render.
type EpochOverlay struct {
	Overlay *textoverlay.Overlay
	Clock   clock.Clock
}

var _ textoverlay.Element = (*EpochOverlay)(nil)
var _ textoverlay.TextSource = (*EpochOverlay)(nil)

// New constructs an element instance. The starting alignment is
// top/left; everything else keeps the base overlay defaults.
func New(ctx context.Context) *EpochOverlay {
	e := &EpochOverlay{
		Overlay: textoverlay.New(),
		Clock:   clock.System,
	}
	e.Overlay.VAlign = types.VAlignTop
	e.Overlay.HAlign = types.HAlignLeft
	e.Overlay.SetTextSource(e)
	return e
}

func (e *EpochOverlay) String() string {
	return "EpochOverlay"
}

func (e *EpochOverlay) TextOverlay() *textoverlay.Overlay {
	return e.Overlay
}

// ProvideText implements textoverlay.TextSource. It is called with the
// overlay's instance lock held, once per render cycle.
func (e *EpochOverlay) ProvideText(ctx context.Context, _ frame.Input) string {
	// even an unchanged numeral must be drawn onto the new frame
	defer e.Overlay.ForceRerender()

	sec, usec, err := e.Clock.GetTimeOfDay()
	if err != nil {
		return TextClockReadFailed
	}
	return strconv.FormatUint(clock.EpochMicros(sec, usec), 10)
}

// FontDefaults is the font/text-direction configuration installed into
// the shared rendering context when the element type is set up.
func FontDefaults() fontctx.FontDescription {
	return fontctx.FontDescription{
		Family:  "Courier",
		Style:   fontctx.StyleNormal,
		Variant: fontctx.VariantNormal,
		Weight:  fontctx.WeightNormal,
		Stretch: fontctx.StretchNormal,
		Size:    50,
	}
}

// ClassInit applies FontDefaults to the shared rendering context. It is
// idempotent; the registry guarantees it runs once per registration.
func ClassInit(ctx context.Context) {
	fontctx.With(ctx, func(fctx *fontctx.Context) {
		fctx.SetLanguage("en_US")
		fctx.SetDirection(fontctx.DirectionLTR)
		fctx.SetFontDescription(FontDefaults())
	})
}

// Register adds the element type to the catalog.
func Register(ctx context.Context) error {
	return registry.Register(ctx, &registry.Registration{
		Metadata: types.ElementMetadata{
			Name:           Name,
			Classification: "Filter/Editor/Video",
			Description:    "Overlays the current time in microseconds from the unix epoch on a video stream",
			Author:         "Tim-Philipp Müller <tim@centricular.net> with modifications from Konstantinos Sofokleous <kostas@epoch.com>",
		},
		ClassInit: ClassInit,
		NewFunc: func(ctx context.Context) (textoverlay.Element, error) {
			return New(ctx), nil
		},
	})
}

// Package textoverlay implements the base text overlay component:
// it obtains a string from a TextSource once per frame and composites
// the rasterized text onto the frame, honoring alignment, padding and
// background shading. Elements (epochoverlay, clockoverlay, ...) plug
// into it through the TextSource interface instead of inheriting from
// it.
package textoverlay

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/go-ng/xatomic"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/logger"
	"github.com/xaionaro-go/overlaypipeline/types"
	"github.com/xaionaro-go/xsync"
	"go.uber.org/atomic"
)

const (
	// DefaultPadding is the distance in pixels between the text and the
	// frame border it is aligned to.
	DefaultPadding = 25

	// DefaultShadingValue is the opacity of the shaded background box.
	DefaultShadingValue = 80
)

// Element is anything that wraps an Overlay: the host pipeline talks to
// the Overlay, the element supplies the text.
type Element interface {
	fmt.Stringer
	TextOverlay() *Overlay
}

// Overlay is a single overlay instance. All property reads and writes
// are guarded by Locker; Render acquires the same lock, so a TextSource
// always runs with it held.
type Overlay struct {
	Locker xsync.Mutex

	VAlign           types.VAlign
	HAlign           types.HAlign
	XPad             int
	YPad             int
	Text             string
	ShadedBackground bool
	ShadingValue     uint8
	Color            color.RGBA

	// Extension handles the element-specific properties, if the element
	// declares any.
	Extension PropertyExtension

	source     *TextSource
	needRender atomic.Bool

	lastText        string
	lastLayer       *image.RGBA
	lastBounds      image.Rectangle
	rasterizedCount uint64
}

func New() *Overlay {
	return &Overlay{
		VAlign:       types.VAlignBaseline,
		HAlign:       types.HAlignCenter,
		XPad:         DefaultPadding,
		YPad:         DefaultPadding,
		ShadingValue: DefaultShadingValue,
		Color:        color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
}

func (o *Overlay) String() string {
	return fmt.Sprintf("TextOverlay(%s)", o.GetTextSource())
}

// TextOverlay makes a bare Overlay usable wherever an Element is
// expected (an overlay with no element is just a static text overlay).
func (o *Overlay) TextOverlay() *Overlay {
	return o
}

func (o *Overlay) SetTextSource(src TextSource) {
	if src == nil {
		xatomic.StorePointer(&o.source, (*TextSource)(nil))
		return
	}
	xatomic.StorePointer(&o.source, &src)
}

func (o *Overlay) GetTextSource() TextSource {
	ptr := xatomic.LoadPointer(&o.source)
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ForceRerender requests that the text is rasterized anew on the next
// render cycle even if it did not change. TextSources call it to opt
// out of the unchanged-text shortcut.
func (o *Overlay) ForceRerender() {
	o.needRender.Store(true)
}

// NeedRender reports whether a re-render was forced and not consumed
// yet.
func (o *Overlay) NeedRender() bool {
	return o.needRender.Load()
}

// Render obtains the current text and composites it onto the frame.
// The frame's picture is modified in place.
func (o *Overlay) Render(ctx context.Context, input frame.Input) (_err error) {
	logger.Tracef(ctx, "Render")
	defer func() { logger.Tracef(ctx, "/Render: %v", _err) }()
	return xsync.DoA2R1(ctx, &o.Locker, o.renderLocked, ctx, input)
}

func (o *Overlay) obtainText(ctx context.Context, input frame.Input) string {
	if src := o.GetTextSource(); src != nil {
		return src.ProvideText(ctx, input)
	}
	return o.Text
}

func (o *Overlay) SetVAlign(v types.VAlign) {
	o.Locker.Do(context.Background(), func() {
		o.VAlign = v
	})
}

func (o *Overlay) GetVAlign() types.VAlign {
	return xsync.DoR1(context.Background(), &o.Locker, func() types.VAlign {
		return o.VAlign
	})
}

func (o *Overlay) SetHAlign(h types.HAlign) {
	o.Locker.Do(context.Background(), func() {
		o.HAlign = h
	})
}

func (o *Overlay) GetHAlign() types.HAlign {
	return xsync.DoR1(context.Background(), &o.Locker, func() types.HAlign {
		return o.HAlign
	})
}

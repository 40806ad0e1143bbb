package textoverlay

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/anthonynsimon/bild/blend"
	"github.com/xaionaro-go/overlaypipeline/fontctx"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/types"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func (o *Overlay) renderLocked(ctx context.Context, input frame.Input) error {
	if input.Image == nil {
		return fmt.Errorf("the frame carries no picture")
	}

	text := o.obtainText(ctx, input)
	force := o.needRender.Swap(false)

	// the rendering path requires null-free text
	text = strings.ReplaceAll(text, "\x00", "")
	if text == "" {
		o.lastText = ""
		o.lastLayer = nil
		return nil
	}

	bounds := input.Image.Bounds()
	if force || o.lastLayer == nil || text != o.lastText || bounds != o.lastBounds {
		layer, err := o.rasterize(ctx, text, bounds)
		if err != nil {
			return fmt.Errorf("unable to rasterize %q: %w", text, err)
		}
		o.lastText = text
		o.lastLayer = layer
		o.lastBounds = bounds
		o.rasterizedCount++
	}

	blended := blend.Normal(input.Image, o.lastLayer)
	copy(input.Image.Pix, blended.Pix)
	return nil
}

// rasterize draws the text into a transparent layer of the frame's
// size, positioned by the current alignment and padding.
func (o *Overlay) rasterize(
	ctx context.Context,
	text string,
	bounds image.Rectangle,
) (*image.RGBA, error) {
	var (
		face      font.Face
		direction fontctx.Direction
		faceErr   error
	)
	fontctx.With(ctx, func(fctx *fontctx.Context) {
		face, faceErr = fctx.Face(ctx)
		direction = fctx.Direction()
	})
	if faceErr != nil {
		return nil, faceErr
	}

	layer := image.NewRGBA(bounds)
	drawer := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(o.Color),
		Face: face,
	}

	textWidth := drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	hAlign := o.HAlign
	if direction == fontctx.DirectionRTL {
		switch hAlign {
		case types.HAlignLeft:
			hAlign = types.HAlignRight
		case types.HAlignRight:
			hAlign = types.HAlignLeft
		}
	}

	var x int
	switch hAlign {
	case types.HAlignLeft:
		x = bounds.Min.X + o.XPad
	case types.HAlignRight:
		x = bounds.Max.X - o.XPad - textWidth
	default:
		x = bounds.Min.X + (bounds.Dx()-textWidth)/2
	}

	var baseline int
	switch o.VAlign {
	case types.VAlignTop:
		baseline = bounds.Min.Y + o.YPad + ascent
	case types.VAlignCenter:
		baseline = bounds.Min.Y + (bounds.Dy()-ascent-descent)/2 + ascent
	default: // bottom and baseline
		baseline = bounds.Max.Y - o.YPad - descent
	}

	if o.ShadedBackground {
		box := image.Rect(
			x-2, baseline-ascent-2,
			x+textWidth+2, baseline+descent+2,
		).Intersect(bounds)
		draw.Draw(layer, box, image.NewUniform(color.RGBA{A: o.ShadingValue}), image.Point{}, draw.Src)
	}

	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
	return layer, nil
}

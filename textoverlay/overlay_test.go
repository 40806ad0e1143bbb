package textoverlay

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/overlaypipeline/fontctx"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/types"
)

func testCtx() context.Context {
	ctx := context.Background()
	fontctx.With(ctx, func(fctx *fontctx.Context) {
		fctx.SetLanguage("en_US")
		fctx.SetDirection(fontctx.DirectionLTR)
		fctx.SetFontDescription(fontctx.FontDescription{
			Family: "Courier",
			Weight: fontctx.WeightNormal,
			Size:   20,
		})
	})
	return ctx
}

func testFrame(w, h int) frame.Input {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return frame.BuildInput(img, 0, 0, 1, types.Fraction{Num: 1, Den: 30})
}

func litPixels(img *image.RGBA) int {
	count := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			count++
		}
	}
	return count
}

func TestOverlayDefaults(t *testing.T) {
	o := New()
	require.Equal(t, types.VAlignBaseline, o.GetVAlign())
	require.Equal(t, types.HAlignCenter, o.GetHAlign())
	require.Equal(t, DefaultPadding, o.XPad)
	require.Equal(t, DefaultPadding, o.YPad)
	require.Nil(t, o.GetTextSource())
}

func TestOverlayRenderDrawsText(t *testing.T) {
	ctx := testCtx()
	o := New()
	o.SetTextSource(StaticText("hello"))

	input := testFrame(320, 240)
	require.Zero(t, litPixels(input.Image))

	require.NoError(t, o.Render(ctx, input))
	require.NotZero(t, litPixels(input.Image))
}

func TestOverlayRenderStaticTextProperty(t *testing.T) {
	ctx := testCtx()
	o := New()
	require.NoError(t, o.SetProperty(ctx, "text", "42"))

	input := testFrame(320, 240)
	require.NoError(t, o.Render(ctx, input))
	require.NotZero(t, litPixels(input.Image))
}

func TestOverlayRenderEmptyTextIsNoop(t *testing.T) {
	ctx := testCtx()
	o := New()

	input := testFrame(64, 64)
	require.NoError(t, o.Render(ctx, input))
	require.Zero(t, litPixels(input.Image))
	require.Zero(t, o.rasterizedCount)
}

func TestOverlayRenderCachesUnchangedText(t *testing.T) {
	ctx := testCtx()
	o := New()
	o.SetTextSource(StaticText("stable"))

	input := testFrame(320, 240)
	require.NoError(t, o.Render(ctx, input))
	require.NoError(t, o.Render(ctx, input))
	require.NoError(t, o.Render(ctx, input))
	require.Equal(t, uint64(1), o.rasterizedCount)

	o.SetTextSource(StaticText("changed"))
	require.NoError(t, o.Render(ctx, input))
	require.Equal(t, uint64(2), o.rasterizedCount)
}

func TestOverlayForceRerenderBypassesTheCache(t *testing.T) {
	ctx := testCtx()
	o := New()
	forcing := SourceFunc(func(context.Context, frame.Input) string {
		o.ForceRerender()
		return "same"
	})
	o.SetTextSource(forcing)

	input := testFrame(320, 240)
	require.NoError(t, o.Render(ctx, input))
	require.NoError(t, o.Render(ctx, input))
	require.Equal(t, uint64(2), o.rasterizedCount)
	require.False(t, o.NeedRender(), "the flag is consumed by the render cycle")
}

func TestOverlayRenderStripsNulls(t *testing.T) {
	ctx := testCtx()
	o := New()
	o.SetTextSource(StaticText("a\x00b"))

	input := testFrame(320, 240)
	require.NoError(t, o.Render(ctx, input))
	require.Equal(t, "ab", o.lastText)
}

func TestOverlayShadedBackground(t *testing.T) {
	ctx := testCtx()
	plain := New()
	plain.SetTextSource(StaticText("shade"))
	shaded := New()
	shaded.SetTextSource(StaticText("shade"))
	shaded.ShadedBackground = true

	fillGray := func(input frame.Input) {
		for i := range input.Image.Pix {
			input.Image.Pix[i] = 0xC8
		}
	}
	sumRed := func(img *image.RGBA) (sum int) {
		for i := 0; i < len(img.Pix); i += 4 {
			sum += int(img.Pix[i])
		}
		return
	}

	plainFrame := testFrame(320, 240)
	shadedFrame := testFrame(320, 240)
	fillGray(plainFrame)
	fillGray(shadedFrame)
	require.NoError(t, plain.Render(ctx, plainFrame))
	require.NoError(t, shaded.Render(ctx, shadedFrame))

	// both frames got the same white text, but only the shaded one got
	// its background box darkened
	require.Less(t, sumRed(shadedFrame.Image), sumRed(plainFrame.Image))
}

func TestOverlayAlignmentMovesTheText(t *testing.T) {
	ctx := testCtx()

	topLeftOf := func(img *image.RGBA) (int, int) {
		for y := 0; y < img.Rect.Dy(); y++ {
			for x := 0; x < img.Rect.Dx(); x++ {
				i := img.PixOffset(x, y)
				if img.Pix[i] != 0 {
					return x, y
				}
			}
		}
		return -1, -1
	}

	render := func(v types.VAlign, h types.HAlign) (int, int) {
		o := New()
		o.SetTextSource(StaticText("X"))
		o.SetVAlign(v)
		o.SetHAlign(h)
		input := testFrame(320, 240)
		require.NoError(t, o.Render(ctx, input))
		return topLeftOf(input.Image)
	}

	xTL, yTL := render(types.VAlignTop, types.HAlignLeft)
	xBR, yBR := render(types.VAlignBottom, types.HAlignRight)
	require.Less(t, xTL, xBR)
	require.Less(t, yTL, yBR)
}

func TestOverlayProperties(t *testing.T) {
	ctx := testCtx()
	o := New()

	require.NoError(t, o.SetProperty(ctx, "valign", "top"))
	require.NoError(t, o.SetProperty(ctx, "halign", types.HAlignRight))
	require.NoError(t, o.SetProperty(ctx, "xpad", 10))
	require.NoError(t, o.SetProperty(ctx, "ypad", "15"))
	require.NoError(t, o.SetProperty(ctx, "shaded-background", true))

	for name, expected := range map[string]any{
		"valign":            types.VAlignTop,
		"halign":            types.HAlignRight,
		"xpad":              10,
		"ypad":              15,
		"shaded-background": true,
	} {
		value, err := o.GetProperty(ctx, name)
		require.NoError(t, err, name)
		require.Equal(t, expected, value, name)
	}

	err := o.SetProperty(ctx, "valign", "diagonal")
	require.Error(t, err)
	require.ErrorAs(t, err, &ErrInvalidPropertyValue{})
	require.Equal(t, types.VAlignTop, o.GetVAlign(), "a failed set changes no state")
}

func TestOverlayInvalidProperty(t *testing.T) {
	ctx := testCtx()
	o := New()
	before := struct {
		VAlign           types.VAlign
		HAlign           types.HAlign
		XPad, YPad       int
		Text             string
		ShadedBackground bool
	}{o.VAlign, o.HAlign, o.XPad, o.YPad, o.Text, o.ShadedBackground}

	err := o.SetProperty(ctx, "no-such-property", 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &ErrInvalidProperty{})

	_, err = o.GetProperty(ctx, "no-such-property")
	require.Error(t, err)
	require.ErrorAs(t, err, &ErrInvalidProperty{})

	require.Equal(t, before.VAlign, o.VAlign)
	require.Equal(t, before.HAlign, o.HAlign)
	require.Equal(t, before.XPad, o.XPad)
	require.Equal(t, before.YPad, o.YPad)
	require.Equal(t, before.Text, o.Text)
	require.Equal(t, before.ShadedBackground, o.ShadedBackground)
}

package epochoverlay

import (
	"context"
	"fmt"
	"image"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/overlaypipeline/fontctx"
	"github.com/xaionaro-go/overlaypipeline/frame"
	"github.com/xaionaro-go/overlaypipeline/textoverlay"
	"github.com/xaionaro-go/overlaypipeline/types"
)

type fakeClock struct {
	Sec  int64
	USec int64
	Err  error
}

func (c fakeClock) GetTimeOfDay() (int64, int64, error) {
	return c.Sec, c.USec, c.Err
}

func testFrame() frame.Input {
	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	return frame.BuildInput(img, 0, 0, 1, types.Fraction{Num: 1, Den: 30})
}

func TestProvideTextScenarios(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		clock    fakeClock
		expected string
	}{
		{fakeClock{Sec: 1, USec: 500_000}, "1500000"},
		{fakeClock{Sec: 0, USec: 0}, "0"},
		{fakeClock{Sec: 1700000000, USec: 123456}, "1700000000123456"},
		{fakeClock{Err: fmt.Errorf("no clock")}, TextClockReadFailed},
	} {
		e := New(ctx)
		e.Clock = tc.clock
		require.Equal(t, tc.expected, e.ProvideText(ctx, testFrame()))
	}
}

func TestProvideTextIsDecimal(t *testing.T) {
	ctx := context.Background()
	e := New(ctx)

	numeral := regexp.MustCompile(`^[0-9]+$`)
	text := e.ProvideText(ctx, testFrame())
	require.Regexp(t, numeral, text)
	require.NotEqual(t, "0", text[:1], "no leading zeros on the live clock")
}

func TestProvideTextTracksTheClock(t *testing.T) {
	ctx := context.Background()
	e := New(ctx)

	before := time.Now()
	text := e.ProvideText(ctx, testFrame())
	after := time.Now()

	var micros uint64
	_, err := fmt.Sscanf(text, "%d", &micros)
	require.NoError(t, err)
	require.GreaterOrEqual(t, micros, uint64(before.UnixMicro()))
	require.LessOrEqual(t, micros, uint64(after.UnixMicro()))
}

func TestProvideTextAlwaysForcesRerender(t *testing.T) {
	ctx := context.Background()

	ClassInit(ctx)
	e := New(ctx)
	e.Clock = fakeClock{Sec: 5, USec: 0}
	for i := 0; i < 3; i++ {
		e.ProvideText(ctx, testFrame())
		require.True(t, e.Overlay.NeedRender(), "cycle %d", i)
		// a render cycle consumes the flag, the next provision raises it again
		require.NoError(t, e.Overlay.Render(ctx, testFrame()))
	}

	e.Clock = fakeClock{Err: fmt.Errorf("no clock")}
	e.ProvideText(ctx, testFrame())
	require.True(t, e.Overlay.NeedRender(), "the failure path also forces a re-render")
}

func TestInstanceDefaults(t *testing.T) {
	ctx := context.Background()
	e := New(ctx)

	require.Equal(t, types.VAlignTop, e.Overlay.GetVAlign())
	require.Equal(t, types.HAlignLeft, e.Overlay.GetHAlign())
	require.Same(t, e.Overlay, e.TextOverlay())
}

func TestNoCustomProperties(t *testing.T) {
	ctx := context.Background()
	e := New(ctx)

	err := e.Overlay.SetProperty(ctx, "epoch-format", "hex")
	require.Error(t, err)
	require.ErrorAs(t, err, &textoverlay.ErrInvalidProperty{})

	_, err = e.Overlay.GetProperty(ctx, "epoch-format")
	require.Error(t, err)
	require.ErrorAs(t, err, &textoverlay.ErrInvalidProperty{})
}

func TestClassInitIsIdempotent(t *testing.T) {
	ctx := context.Background()

	ClassInit(ctx)
	var first fontctx.FontDescription
	var firstLanguage string
	var firstDirection fontctx.Direction
	fontctx.With(ctx, func(fctx *fontctx.Context) {
		first = fctx.FontDescription()
		firstLanguage = fctx.Language()
		firstDirection = fctx.Direction()
	})

	ClassInit(ctx)
	fontctx.With(ctx, func(fctx *fontctx.Context) {
		require.Equal(t, first, fctx.FontDescription())
		require.Equal(t, firstLanguage, fctx.Language())
		require.Equal(t, firstDirection, fctx.Direction())
	})

	require.Equal(t, "en_US", firstLanguage)
	require.Equal(t, fontctx.DirectionLTR, firstDirection)
	require.Equal(t, FontDefaults(), first)
}

func TestRenderEndToEnd(t *testing.T) {
	ctx := context.Background()
	ClassInit(ctx)

	e := New(ctx)
	e.Clock = fakeClock{Sec: 1, USec: 500_000}

	input := testFrame()
	require.NoError(t, e.Overlay.Render(ctx, input))

	lit := 0
	for i := 0; i < len(input.Image.Pix); i += 4 {
		if input.Image.Pix[i] != 0 {
			lit++
		}
	}
	require.NotZero(t, lit, "the numeral got drawn onto the frame")
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, Register(ctx))
	err := Register(ctx)
	require.Error(t, err, "an element type registers once")
}

package fontctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithIsScoped(t *testing.T) {
	ctx := context.Background()

	require.Panics(t, func() {
		With(ctx, func(fctx *Context) {
			panic("boom")
		})
	})

	// The lock must have been released on the panicking exit path.
	reached := false
	With(ctx, func(fctx *Context) {
		reached = true
	})
	require.True(t, reached)
}

func TestFaceResolution(t *testing.T) {
	ctx := context.Background()
	fctx := NewContext()

	_, err := fctx.Face(ctx)
	require.Error(t, err, "no description set yet")

	fctx.SetFontDescription(FontDescription{
		Family: "Courier",
		Weight: WeightNormal,
		Size:   50,
	})
	face, err := fctx.Face(ctx)
	require.NoError(t, err)
	require.NotNil(t, face)

	again, err := fctx.Face(ctx)
	require.NoError(t, err)
	require.Same(t, face, again, "faces are cached per description")
}

func TestFaceFamilies(t *testing.T) {
	ctx := context.Background()
	fctx := NewContext()

	for _, description := range []FontDescription{
		{Family: "Courier", Size: 20},
		{Family: "Courier", Weight: WeightBold, Size: 20},
		{Family: "monospace", Style: StyleItalic, Size: 20},
		{Family: "Go Mono", Weight: WeightBold, Style: StyleItalic, Size: 20},
		{Family: "Sans", Size: 20},
		{Family: "Sans", Weight: WeightBold, Size: 20},
		{Family: "Sans", Style: StyleOblique, Size: 20},
		{Family: "Sans", Variant: VariantSmallCaps, Size: 20},
	} {
		fctx.SetFontDescription(description)
		face, err := fctx.Face(ctx)
		require.NoError(t, err, description.String())
		require.NotNil(t, face, description.String())
	}
}

func TestContextMetadata(t *testing.T) {
	fctx := NewContext()
	require.Equal(t, "C", fctx.Language())
	require.Equal(t, DirectionLTR, fctx.Direction())

	fctx.SetLanguage("en_US")
	fctx.SetDirection(DirectionRTL)
	require.Equal(t, "en_US", fctx.Language())
	require.Equal(t, DirectionRTL, fctx.Direction())
}

package fontctx

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/overlaypipeline/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
)

// Face resolves the current font description to a rasterizable face.
// Resolved faces are cached in the context (and so share the context's
// locking discipline).
func (fctx *Context) Face(ctx context.Context) (font.Face, error) {
	description := fctx.description
	if description.Size <= 0 {
		return nil, fmt.Errorf("no usable font description is set: %s", description)
	}
	if face, ok := fctx.faces[description]; ok {
		return face, nil
	}

	ttf := resolveTTF(description)
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("unable to parse the font for %s: %w", description, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    description.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to build a face for %s: %w", description, err)
	}

	logger.Debugf(ctx, "resolved font %s", description)
	fctx.faces[description] = face
	return face, nil
}

var monospaceFamilies = map[string]struct{}{
	"courier":     {},
	"courier new": {},
	"monospace":   {},
	"go mono":     {},
	"mono":        {},
}

// resolveTTF picks the closest embedded Go font for the description.
// There is no fontconfig lookup here: the elements of this module ship
// with a fixed set of faces, the same way the test-pattern generator
// ships with a fixed set of patterns.
func resolveTTF(description FontDescription) []byte {
	bold := description.Weight >= WeightBold
	italic := description.Style != StyleNormal

	if _, ok := monospaceFamilies[strings.ToLower(description.Family)]; ok {
		switch {
		case bold && italic:
			return gomonobolditalic.TTF
		case bold:
			return gomonobold.TTF
		case italic:
			return gomonoitalic.TTF
		}
		return gomono.TTF
	}

	if description.Variant == VariantSmallCaps {
		if italic {
			return gosmallcapsitalic.TTF
		}
		return gosmallcaps.TTF
	}

	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	}
	return goregular.TTF
}

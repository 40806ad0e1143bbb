package fontctx

import (
	"fmt"
)

// Direction is the base text direction of the rendering context.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	}
	return fmt.Sprintf("unexpected_direction_%d", int(d))
}

type Style int

const (
	StyleNormal Style = iota
	StyleOblique
	StyleItalic
)

type Variant int

const (
	VariantNormal Variant = iota
	VariantSmallCaps
)

type Weight int

const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

type Stretch int

const (
	StretchNormal Stretch = iota
	StretchCondensed
	StretchExpanded
)

// FontDescription selects a font face. Size is in points.
type FontDescription struct {
	Family  string
	Style   Style
	Variant Variant
	Weight  Weight
	Stretch Stretch
	Size    float64
}

func (d FontDescription) String() string {
	return fmt.Sprintf("%s:style=%d:variant=%d:weight=%d:stretch=%d:size=%v",
		d.Family, d.Style, d.Variant, d.Weight, d.Stretch, d.Size)
}

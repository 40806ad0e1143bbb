package types

import (
	"fmt"
)

// VAlign is the vertical alignment of overlaid text within a frame.
type VAlign int

const (
	VAlignBaseline VAlign = iota
	VAlignBottom
	VAlignTop
	VAlignCenter
)

var _ fmt.Stringer = VAlign(0)

func (v VAlign) String() string {
	switch v {
	case VAlignBaseline:
		return "baseline"
	case VAlignBottom:
		return "bottom"
	case VAlignTop:
		return "top"
	case VAlignCenter:
		return "center"
	}
	return fmt.Sprintf("unexpected_valign_%d", int(v))
}

func ParseVAlign(s string) (VAlign, error) {
	for _, v := range []VAlign{VAlignBaseline, VAlignBottom, VAlignTop, VAlignCenter} {
		if v.String() == s {
			return v, nil
		}
	}
	return VAlignBaseline, fmt.Errorf("unknown vertical alignment: '%s'", s)
}

func (v VAlign) MarshalYAML() (any, error) {
	return v.String(), nil
}

func (v *VAlign) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseVAlign(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// HAlign is the horizontal alignment of overlaid text within a frame.
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

var _ fmt.Stringer = HAlign(0)

func (h HAlign) String() string {
	switch h {
	case HAlignLeft:
		return "left"
	case HAlignCenter:
		return "center"
	case HAlignRight:
		return "right"
	}
	return fmt.Sprintf("unexpected_halign_%d", int(h))
}

func ParseHAlign(s string) (HAlign, error) {
	for _, h := range []HAlign{HAlignLeft, HAlignCenter, HAlignRight} {
		if h.String() == s {
			return h, nil
		}
	}
	return HAlignLeft, fmt.Errorf("unknown horizontal alignment: '%s'", s)
}

func (h HAlign) MarshalYAML() (any, error) {
	return h.String(), nil
}

func (h *HAlign) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseHAlign(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

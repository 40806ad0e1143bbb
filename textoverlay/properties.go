package textoverlay

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xaionaro-go/overlaypipeline/logger"
	"github.com/xaionaro-go/overlaypipeline/types"
	"github.com/xaionaro-go/xsync"
)

// PropertyExtension lets an element contribute properties on top of the
// base set. Try* report whether the property was recognized; they run
// under the overlay's instance lock.
type PropertyExtension interface {
	TrySetProperty(ctx context.Context, name string, value any) (bool, error)
	TryGetProperty(ctx context.Context, name string) (any, bool, error)
}

// SetProperty sets a property by its string name. An unknown name is
// reported as an invalid-property warning and changes no state.
func (o *Overlay) SetProperty(ctx context.Context, name string, value any) (_err error) {
	logger.Tracef(ctx, "SetProperty(%q, %v)", name, value)
	defer func() { logger.Tracef(ctx, "/SetProperty(%q, %v): %v", name, value, _err) }()
	return xsync.DoA3R1(ctx, &o.Locker, o.setPropertyLocked, ctx, name, value)
}

func (o *Overlay) setPropertyLocked(ctx context.Context, name string, value any) error {
	switch name {
	case "valign":
		v, err := coerceVAlign(value)
		if err != nil {
			return ErrInvalidPropertyValue{Name: name, Value: value, Err: err}
		}
		o.VAlign = v
	case "halign":
		v, err := coerceHAlign(value)
		if err != nil {
			return ErrInvalidPropertyValue{Name: name, Value: value, Err: err}
		}
		o.HAlign = v
	case "xpad":
		v, err := coerceInt(value)
		if err != nil {
			return ErrInvalidPropertyValue{Name: name, Value: value, Err: err}
		}
		o.XPad = v
	case "ypad":
		v, err := coerceInt(value)
		if err != nil {
			return ErrInvalidPropertyValue{Name: name, Value: value, Err: err}
		}
		o.YPad = v
	case "text":
		v, err := coerceString(value)
		if err != nil {
			return ErrInvalidPropertyValue{Name: name, Value: value, Err: err}
		}
		o.Text = v
	case "shaded-background":
		v, err := coerceBool(value)
		if err != nil {
			return ErrInvalidPropertyValue{Name: name, Value: value, Err: err}
		}
		o.ShadedBackground = v
	default:
		if o.Extension != nil {
			handled, err := o.Extension.TrySetProperty(ctx, name, value)
			if err != nil {
				return err
			}
			if handled {
				return nil
			}
		}
		logger.Warnf(ctx, "invalid property: '%s'", name)
		return ErrInvalidProperty{Name: name}
	}
	return nil
}

// GetProperty returns the current value of a property by its string
// name. An unknown name is reported as an invalid-property warning.
func (o *Overlay) GetProperty(ctx context.Context, name string) (_ret any, _err error) {
	logger.Tracef(ctx, "GetProperty(%q)", name)
	defer func() { logger.Tracef(ctx, "/GetProperty(%q): %v, %v", name, _ret, _err) }()
	return xsync.DoA2R2(ctx, &o.Locker, o.getPropertyLocked, ctx, name)
}

func (o *Overlay) getPropertyLocked(ctx context.Context, name string) (any, error) {
	switch name {
	case "valign":
		return o.VAlign, nil
	case "halign":
		return o.HAlign, nil
	case "xpad":
		return o.XPad, nil
	case "ypad":
		return o.YPad, nil
	case "text":
		return o.Text, nil
	case "shaded-background":
		return o.ShadedBackground, nil
	}
	if o.Extension != nil {
		value, handled, err := o.Extension.TryGetProperty(ctx, name)
		if err != nil {
			return nil, err
		}
		if handled {
			return value, nil
		}
	}
	logger.Warnf(ctx, "invalid property: '%s'", name)
	return nil, ErrInvalidProperty{Name: name}
}

func coerceVAlign(value any) (types.VAlign, error) {
	switch v := value.(type) {
	case types.VAlign:
		return v, nil
	case string:
		return types.ParseVAlign(v)
	}
	return 0, fmt.Errorf("unexpected type %T", value)
}

func coerceHAlign(value any) (types.HAlign, error) {
	switch v := value.(type) {
	case types.HAlign:
		return v, nil
	case string:
		return types.ParseHAlign(v)
	}
	return 0, fmt.Errorf("unexpected type %T", value)
}

func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	}
	return 0, fmt.Errorf("unexpected type %T", value)
}

func coerceBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	}
	return false, fmt.Errorf("unexpected type %T", value)
}

func coerceString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return "", fmt.Errorf("unexpected type %T", value)
}

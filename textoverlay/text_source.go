package textoverlay

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/overlaypipeline/frame"
)

// TextSource is the single extension point of the base overlay: given
// the frame about to be composited, return the text to display on it.
//
// ProvideText is invoked with the overlay's instance lock already held;
// implementations must not block, must not call back into the overlay
// except ForceRerender, and must return printable text (an empty string
// means "nothing to overlay this cycle"). The returned string is owned
// by the overlay for exactly one render cycle.
type TextSource interface {
	fmt.Stringer
	ProvideText(ctx context.Context, input frame.Input) string
}

// SourceFunc adapts a plain function to a TextSource.
type SourceFunc func(ctx context.Context, input frame.Input) string

var _ TextSource = (SourceFunc)(nil)

func (fn SourceFunc) String() string {
	return fmt.Sprintf("<custom_text_source:%p>", fn)
}

func (fn SourceFunc) ProvideText(ctx context.Context, input frame.Input) string {
	return fn(ctx, input)
}

// StaticText is a TextSource that always renders the same string.
type StaticText string

var _ TextSource = (StaticText)("")

func (v StaticText) String() string {
	return fmt.Sprintf("StaticText(%q)", string(v))
}

func (v StaticText) ProvideText(context.Context, frame.Input) string {
	return string(v)
}

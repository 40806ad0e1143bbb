package frame

import (
	"image"
	"time"

	"github.com/xaionaro-go/overlaypipeline/types"
)

// Commons is the data shared by all frame flavors: a decoded RGBA
// picture plus its position on the stream's timeline.
type Commons struct {
	Image       *image.RGBA
	StreamIndex int
	PTS         int64
	Duration    int64
	TimeBase    types.Fraction
}

func (f *Commons) GetStreamIndex() int {
	return f.StreamIndex
}

func (f *Commons) GetTimeBase() types.Fraction {
	return f.TimeBase
}

func (f *Commons) GetSize() int {
	if f.Image == nil {
		return 0
	}
	return len(f.Image.Pix)
}

func (f *Commons) GetWidth() int {
	if f.Image == nil {
		return 0
	}
	return f.Image.Rect.Dx()
}

func (f *Commons) GetHeight() int {
	if f.Image == nil {
		return 0
	}
	return f.Image.Rect.Dy()
}

func (f *Commons) GetPTS() int64 {
	return f.PTS
}

func (f *Commons) SetPTS(v int64) {
	f.PTS = v
}

func (f *Commons) GetPTSAsDuration() time.Duration {
	return f.TimeBase.Duration(f.PTS)
}

func (f *Commons) GetDurationAsDuration() time.Duration {
	return f.TimeBase.Duration(f.Duration)
}

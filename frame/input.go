package frame

import (
	"image"
	"time"

	"github.com/xaionaro-go/overlaypipeline/types"
)

type Input Commons

func BuildInput(
	img *image.RGBA,
	streamIndex int,
	pts int64,
	duration int64,
	timeBase types.Fraction,
) Input {
	return Input{
		Image:       img,
		StreamIndex: streamIndex,
		PTS:         pts,
		Duration:    duration,
		TimeBase:    timeBase,
	}
}

func (f *Input) GetSize() int {
	return (*Commons)(f).GetSize()
}

func (f *Input) GetWidth() int {
	return (*Commons)(f).GetWidth()
}

func (f *Input) GetHeight() int {
	return (*Commons)(f).GetHeight()
}

func (f *Input) GetStreamIndex() int {
	return (*Commons)(f).GetStreamIndex()
}

func (f *Input) GetPTS() int64 {
	return (*Commons)(f).GetPTS()
}

func (f *Input) GetPTSAsDuration() time.Duration {
	return (*Commons)(f).GetPTSAsDuration()
}

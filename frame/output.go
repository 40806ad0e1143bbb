package frame

import (
	"time"
)

type Output Commons

func (f *Output) GetSize() int {
	return (*Commons)(f).GetSize()
}

func (f *Output) GetWidth() int {
	return (*Commons)(f).GetWidth()
}

func (f *Output) GetHeight() int {
	return (*Commons)(f).GetHeight()
}

func (f *Output) GetStreamIndex() int {
	return (*Commons)(f).GetStreamIndex()
}

func (f *Output) GetPTS() int64 {
	return (*Commons)(f).GetPTS()
}

func (f *Output) GetPTSAsDuration() time.Duration {
	return (*Commons)(f).GetPTSAsDuration()
}

func (f Output) ToInput() Input {
	return Input(f)
}

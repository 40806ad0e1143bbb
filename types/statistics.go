package types

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/atomic"
)

// ProcessingStatistics is a snapshot of the counters of a processing
// stage.
type ProcessingStatistics struct {
	FramesRead  uint64 `yaml:"frames_read"`
	FramesWrote uint64 `yaml:"frames_wrote"`
	BytesRead   uint64 `yaml:"bytes_read"`
	BytesWrote  uint64 `yaml:"bytes_wrote"`
}

func (stats ProcessingStatistics) String() string {
	return fmt.Sprintf(
		"frames: %s read, %s wrote; pixel data: %s read, %s wrote",
		humanize.Comma(int64(stats.FramesRead)),
		humanize.Comma(int64(stats.FramesWrote)),
		humanize.Bytes(stats.BytesRead),
		humanize.Bytes(stats.BytesWrote),
	)
}

// CommonsProcessingStatistics is the live (atomic) variant of
// ProcessingStatistics, embeddable into kernels.
type CommonsProcessingStatistics struct {
	FramesRead  atomic.Uint64
	FramesWrote atomic.Uint64
	BytesRead   atomic.Uint64
	BytesWrote  atomic.Uint64
}

func (stats *CommonsProcessingStatistics) Convert() ProcessingStatistics {
	return ProcessingStatistics{
		FramesRead:  stats.FramesRead.Load(),
		FramesWrote: stats.FramesWrote.Load(),
		BytesRead:   stats.BytesRead.Load(),
		BytesWrote:  stats.BytesWrote.Load(),
	}
}

func (stats *CommonsProcessingStatistics) GetStats() *ProcessingStatistics {
	return ptr(stats.Convert())
}

func ptr[T any](v T) *T {
	return &v
}

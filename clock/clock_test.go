package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemClock(t *testing.T) {
	before := time.Now().Add(-time.Second)

	sec, usec, err := System.GetTimeOfDay()
	require.NoError(t, err)
	require.GreaterOrEqual(t, sec, before.Unix())
	require.GreaterOrEqual(t, usec, int64(0))
	require.Less(t, usec, int64(1_000_000))
}

func TestEpochMicros(t *testing.T) {
	require.Equal(t, uint64(0), EpochMicros(0, 0))
	require.Equal(t, uint64(1_500_000), EpochMicros(1, 500_000))
	require.Equal(t, uint64(1_000_001), EpochMicros(1, 1))
}

package surfutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailedStatisticsClear(t *testing.T) {
	var stats DetailedStatistics
	stats.Clear()

	require.Equal(t, 0, stats.LevelCount)
	require.Equal(t, math.MaxInt, stats.LevelSizeMin)
	require.Equal(t, 0, stats.LevelSizeMax)
	require.Equal(t, math.MaxInt, stats.PadBytesMin)
	require.Equal(t, 0, stats.PadBytesMax)
}

func TestDetailedStatisticsAddLevel(t *testing.T) {
	var stats DetailedStatistics
	stats.Clear()

	stats.AddLevel(4096, 96)
	stats.AddLevel(64, 0)

	require.Equal(t, 2, stats.LevelCount)
	require.Equal(t, 4160, stats.PaddedBytes)
	require.Equal(t, 4064, stats.TexelBytes)
	require.Equal(t, 64, stats.LevelSizeMin)
	require.Equal(t, 4096, stats.LevelSizeMax)
	require.Equal(t, 0, stats.PadBytesMin)
	require.Equal(t, 96, stats.PadBytesMax)
}

func TestDetailedStatisticsMerge(t *testing.T) {
	var a, b DetailedStatistics
	a.Clear()
	b.Clear()

	a.AddLevel(100, 10)
	b.AddLevel(200, 5)
	b.LayerCount = 6

	a.AddDetailedStatistics(&b)

	require.Equal(t, 2, a.LevelCount)
	require.Equal(t, 6, a.LayerCount)
	require.Equal(t, 300, a.PaddedBytes)
	require.Equal(t, 100, a.LevelSizeMin)
	require.Equal(t, 200, a.LevelSizeMax)
	require.Equal(t, 5, a.PadBytesMin)
	require.Equal(t, 10, a.PadBytesMax)
}

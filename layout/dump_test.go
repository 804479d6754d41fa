package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gpukit/surfplan/format"
)

func TestBuildLayoutString(t *testing.T) {
	planner := testPlanner(t)

	layout, err := planner.Plan(Descriptor{
		Target:      Target2D,
		Format:      format.RGBA8,
		Width:       256,
		Height:      256,
		Depth:       1,
		MipLevels:   9,
		ArrayLayers: 1,
	})
	require.NoError(t, err)

	str := layout.BuildLayoutString()
	require.NotEmpty(t, str)

	var parsed struct {
		Target      string
		Format      string
		CPP         int
		Tiled       bool
		TotalBytes  int
		LayerStride int
		Levels      []struct {
			Tiling       string
			Offset       int
			Stride       int
			PaddedHeight int
			Size         int
			UBPad        int
		}
	}
	require.NoError(t, json.Unmarshal([]byte(str), &parsed))

	require.Equal(t, "2D", parsed.Target)
	require.Equal(t, "RGBA8", parsed.Format)
	require.Equal(t, 4, parsed.CPP)
	require.True(t, parsed.Tiled)
	require.Equal(t, layout.TotalSize(), parsed.TotalBytes)
	require.Len(t, parsed.Levels, 9)

	require.Equal(t, "UIF^", parsed.Levels[0].Tiling)
	require.Equal(t, layout.Level(0).Offset, parsed.Levels[0].Offset)
	require.Equal(t, "LT", parsed.Levels[8].Tiling)
}

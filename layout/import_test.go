package layout

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/gpukit/surfplan/format"
)

func TestPlanImported(t *testing.T) {
	planner := testPlanner(t)

	desc := Descriptor{
		Target:      Target2D,
		Format:      format.RGBA8,
		Width:       640,
		Height:      480,
		Depth:       1,
		MipLevels:   1,
		ArrayLayers: 1,
	}

	layout, err := planner.PlanImported(desc, ImportInfo{
		Modifier: ModifierLinear,
		Stride:   640 * 4,
	})
	require.NoError(t, err)
	require.False(t, layout.Tiled())
	require.Equal(t, 640*4, layout.Level(0).Stride)
}

func TestPlanImportedStrideMismatch(t *testing.T) {
	planner := testPlanner(t)

	desc := Descriptor{
		Target:      Target2D,
		Format:      format.RGBA8,
		Width:       640,
		Height:      480,
		Depth:       1,
		MipLevels:   1,
		ArrayLayers: 1,
	}

	for _, delta := range []int{-4, -1, 1, 4, 64, 4096} {
		_, err := planner.PlanImported(desc, ImportInfo{
			Modifier: ModifierLinear,
			Stride:   640*4 + delta,
		})
		require.Error(t, err, "delta %d", delta)
		require.True(t, errors.Is(err, IncompatibleLayoutError), "delta %d", delta)
	}
}

func TestPlanImportedUnsupported(t *testing.T) {
	planner := testPlanner(t)

	desc := Descriptor{
		Target:      Target2D,
		Format:      format.RGBA8,
		Width:       640,
		Height:      480,
		Depth:       1,
		MipLevels:   1,
		ArrayLayers: 1,
	}

	_, err := planner.PlanImported(desc, ImportInfo{
		Modifier: ModifierUIF,
		Stride:   640 * 4,
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, InvalidDescriptorError))

	_, err = planner.PlanImported(desc, ImportInfo{
		Modifier: ModifierLinear,
		Stride:   640 * 4,
		Offset:   4096,
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, InvalidDescriptorError))
}

func TestPlanImportedMatchesExport(t *testing.T) {
	planner := testPlanner(t)

	desc := Descriptor{
		Target:      Target2D,
		Format:      format.BGRA8,
		Width:       1920,
		Height:      1080,
		Depth:       1,
		MipLevels:   1,
		ArrayLayers: 1,
		Bind:        BindLinear | BindShared,
	}

	exported, err := planner.Plan(desc)
	require.NoError(t, err)

	info := exported.ExportInfo()
	require.Equal(t, ModifierLinear, info.Modifier)

	imported, err := planner.PlanImported(desc, ImportInfo{
		Modifier: info.Modifier,
		Stride:   info.Stride,
		Offset:   info.Offset,
	})
	require.NoError(t, err)
	require.Equal(t, exported, imported)
}

package layout

import (
	cerrors "github.com/cockroachdb/errors"

	"github.com/gpukit/surfplan/format"
	"github.com/gpukit/surfplan/surfutils"
)

// LevelSlice is the physical layout of a single mip level: where it starts,
// how wide a row is after padding, and which tiling class the hardware should
// walk it with.
type LevelSlice struct {
	Tiling TilingClass

	// Offset is the byte offset of this level from the start of layer 0
	Offset int
	// Stride is the padded row pitch in bytes
	Stride int
	// PaddedHeight is the padded height in texel rows (compressed block rows
	// for compressed formats)
	PaddedHeight int
	// Size is the byte size of one layer or depth slice of this level
	Size int
	// UBPad is the number of extra UIF block rows inserted to stagger memory
	// banks across block columns. Nonzero only for the block-interleaved
	// classes.
	UBPad int
}

// Layout is the complete physical memory plan for one resource. It is computed
// once by a Planner and immutable afterwards, so it may be read concurrently
// without synchronization.
type Layout struct {
	target      TargetKind
	imageFormat format.Format
	cpp         int
	tiled       bool

	width       int
	height      int
	depth       int
	arrayLayers int
	samples     int

	levels      []LevelSlice
	layerStride int
	totalSize   int
}

func (l *Layout) Target() TargetKind { return l.target }

func (l *Layout) Format() format.Format { return l.imageFormat }

func (l *Layout) ArrayLayers() int { return l.arrayLayers }

func (l *Layout) SampleCount() int { return l.samples }

func (l *Layout) LevelCount() int { return len(l.levels) }

func (l *Layout) Level(level int) *LevelSlice {
	return &l.levels[level]
}

// CPP returns the per-texel byte size the layout was computed for, including
// the multisample scaling from Descriptor.resolveCPP
func (l *Layout) CPP() int { return l.cpp }

// Tiled returns true when level 0 uses any class other than TilingRaster
func (l *Layout) Tiled() bool { return l.tiled }

// LayerStride returns the byte distance between array layers (or cube faces).
// For 3D targets it is the distance between depth slices of level 0 instead.
func (l *Layout) LayerStride() int { return l.layerStride }

// TotalSize returns the byte size the backing allocation must have
func (l *Layout) TotalSize() int { return l.totalSize }

// LayerOffset returns the byte offset of one layer (or depth slice, for 3D
// targets) of one mip level. Mapping and render-target setup both address
// memory through this.
func (l *Layout) LayerOffset(level, layer int) int {
	slice := &l.levels[level]

	if l.target == Target3D {
		return slice.Offset + layer*slice.Size
	}

	return slice.Offset + layer*l.layerStride
}

// ExportInfo is the layout summary handed to a handle-export layer
type ExportInfo struct {
	Modifier  Modifier
	Stride    int
	Offset    int
	TotalSize int
}

// ExportInfo returns the level-0 stride and offset plus the total allocation
// size, which is what winsys handle export needs to publish.
func (l *Layout) ExportInfo() ExportInfo {
	modifier := ModifierLinear
	if l.tiled {
		modifier = ModifierUIF
	}

	return ExportInfo{
		Modifier:  modifier,
		Stride:    l.levels[0].Stride,
		Offset:    l.levels[0].Offset,
		TotalSize: l.totalSize,
	}
}

// Validate performs internal consistency checks against the invariants the
// hardware address generator relies on. A layout produced by a Planner should
// never fail validation; this exists to diagnose planner regressions via
// surfutils.DebugValidate.
func (l *Layout) Validate() error {
	if len(l.levels) == 0 {
		return cerrors.New("layout has no levels")
	}

	// The micro-tile dimension tables only exist for power-of-two texel sizes.
	err := surfutils.CheckPow2(uint(l.cpp), "texel size")
	if err != nil {
		return err
	}

	lastLevel := len(l.levels) - 1
	for i := lastLevel; i >= 0; i-- {
		slice := &l.levels[i]

		if slice.Size != slice.Stride*slice.PaddedHeight {
			return cerrors.Newf("level %d size %d does not equal stride %d x padded height %d",
				i, slice.Size, slice.Stride, slice.PaddedHeight)
		}

		align := slice.Tiling.strideAlign(l.cpp)
		if slice.Stride%align != 0 {
			return cerrors.Newf("level %d (%s) stride %d is not a multiple of %d", i, slice.Tiling.String(), slice.Stride, align)
		}

		// Offsets are assigned smallest mip first, so they never decrease as
		// the level index decreases.
		if i < lastLevel && slice.Offset < l.levels[i+1].Offset {
			return cerrors.Newf("level %d offset %d precedes level %d offset %d", i, slice.Offset, i+1, l.levels[i+1].Offset)
		}
	}

	// Level 0 is front-padded to a page boundary when the smaller levels do not
	// already end on one.
	if l.levels[0].Offset != surfutils.AlignDown(l.levels[0].Offset, pageSize) {
		return cerrors.Newf("level 0 offset %d is not page aligned", l.levels[0].Offset)
	}

	if l.target == Target3D {
		if l.layerStride != l.levels[0].Size {
			return cerrors.Newf("3D layer stride %d does not equal the level-0 slice size %d", l.layerStride, l.levels[0].Size)
		}
	} else if l.layerStride%64 != 0 {
		return cerrors.Newf("layer stride %d is not 64-byte aligned", l.layerStride)
	}

	if l.totalSize < l.levels[0].Offset+l.levels[0].Size {
		return cerrors.Newf("total size %d cannot hold level 0 ending at %d", l.totalSize, l.levels[0].Offset+l.levels[0].Size)
	}

	return nil
}

// AddDetailedStatistics sums this layout's padding overhead into the provided
// statistics object
func (l *Layout) AddDetailedStatistics(stats *surfutils.DetailedStatistics) {
	stats.LayerCount += l.arrayLayers

	info, err := format.Lookup(l.imageFormat)
	if err != nil {
		return
	}

	for i := range l.levels {
		slice := &l.levels[i]

		levelWidth := surfutils.DivRoundUp(surfutils.Minify(l.width, i), info.BlockWidth)
		levelHeight := surfutils.DivRoundUp(surfutils.Minify(l.height, i), info.BlockHeight)
		if l.samples > 1 {
			levelWidth *= 2
			levelHeight *= 2
		}

		texelBytes := levelWidth * levelHeight * l.cpp
		stats.AddLevel(slice.Size, slice.Size-texelBytes)
	}
}

package layout

import (
	"context"
	"io"

	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/gpukit/surfplan/format"
	"github.com/gpukit/surfplan/surfutils"
)

// Modifier is a 64-bit layout negotiation token in the DRM format-modifier
// namespace, exchanged with winsys handle import/export layers.
type Modifier uint64

const (
	// ModifierLinear requests or describes a raster-order layout
	ModifierLinear Modifier = 0
	// ModifierUIF requests or describes the block-interleaved tiled layout
	ModifierUIF Modifier = (0x07 << 56) | 1
	// ModifierInvalid means the caller has no layout opinion and the planner
	// picks whatever performs best
	ModifierInvalid Modifier = 0x00ffffffffffffff
)

// PlannerOptions adjusts planning for the platform the driver runs on.
type PlannerOptions struct {
	// LinearScanout forces raster layouts for scanout and shared resources,
	// for display controllers that cannot read UIF memory
	LinearScanout bool
}

// Planner computes Layouts from Descriptors. Planning is a pure computation:
// a Planner holds no per-resource state and may be shared across goroutines
// creating resources concurrently.
type Planner struct {
	logger  *slog.Logger
	options PlannerOptions
}

// New creates a Planner. Computed layouts are reported through the provided
// logger at Debug level; pass nil to disable reporting.
func New(logger *slog.Logger, options PlannerOptions) *Planner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Planner{
		logger:  logger,
		options: options,
	}
}

// Plan computes the physical memory layout for a resource, letting the
// planner choose between tiled and linear on its own. It is equivalent to
// PlanWithModifiers with the single modifier ModifierInvalid.
func (p *Planner) Plan(desc Descriptor) (*Layout, error) {
	return p.PlanWithModifiers(desc, []Modifier{ModifierInvalid})
}

// PlanWithModifiers computes the physical memory layout for a resource whose
// consumers restrict the acceptable layouts to the provided modifier list.
// It fails with InvalidDescriptorError if the descriptor is malformed or no
// listed modifier is usable for it.
func (p *Planner) PlanWithModifiers(desc Descriptor, modifiers []Modifier) (*Layout, error) {
	info, err := desc.validate()
	if err != nil {
		return nil, err
	}

	// Use a tiled layout if we can, for better 3D performance.
	shouldTile := true

	// Buffers are untiled (and 1 height).
	if desc.Target == TargetBuffer {
		shouldTile = false
	}

	// Cursors are always linear, and the user can request linear as well.
	if desc.Bind&(BindLinear|BindCursor) != 0 {
		shouldTile = false
	}

	// 1D and 1D_ARRAY textures are always raster-order.
	if desc.Target == Target1D || desc.Target == Target1DArray {
		shouldTile = false
	}

	if p.options.LinearScanout && desc.Bind&(BindShared|BindScanout) != 0 {
		shouldTile = false
	}

	var tiled bool
	switch {
	case len(modifiers) == 1 && modifiers[0] == ModifierInvalid:
		// No caller opinion; determine our own.
		tiled = shouldTile
	case shouldTile && hasModifier(ModifierUIF, modifiers):
		tiled = true
	case hasModifier(ModifierLinear, modifiers):
		tiled = false
	default:
		return nil, cerrors.Wrapf(InvalidDescriptorError, "no supported modifier for %s resource in %v", desc.Target.String(), modifiers)
	}

	layout := assemble(desc, info, tiled)
	p.logLayout(layout, "plan")
	surfutils.DebugValidate(layout)

	return layout, nil
}

func hasModifier(needle Modifier, haystack []Modifier) bool {
	for i := 0; i < len(haystack); i++ {
		if haystack[i] == needle {
			return true
		}
	}

	return false
}

// assemble walks mip levels from the smallest up, selecting a tiling class and
// padded geometry for each and accumulating byte offsets.
func assemble(desc Descriptor, info format.Info, tiled bool) *Layout {
	cpp := desc.resolveCPP(info)
	surfutils.DebugCheckPow2(uint(cpp), "texel size")

	width := desc.Width
	height := desc.Height
	depth := desc.Depth

	// Note that power-of-two padding is based on level 1. These are not
	// equivalent to just NextPow2(dimension), because at a level 0 dimension
	// of 9, the level 1 power-of-two padded value is 4, not 8.
	potWidth := 2 * surfutils.NextPow2(surfutils.Minify(width, 1))
	potHeight := 2 * surfutils.NextPow2(surfutils.Minify(height, 1))
	potDepth := 2 * surfutils.NextPow2(surfutils.Minify(depth, 1))

	utileW := utileWidth(cpp)
	utileH := utileHeight(cpp)
	uifBlockW := utileW * 2
	uifBlockH := utileH * 2

	msaa := desc.sampleCount() > 1
	// Multisampled resources are always laid out as single-level UIF.
	uifTop := msaa

	levels := make([]LevelSlice, desc.MipLevels)
	lastLevel := desc.MipLevels - 1
	offset := 0

	for i := lastLevel; i >= 0; i-- {
		slice := &levels[i]

		var levelWidth, levelHeight, levelDepth int
		if i < 2 {
			levelWidth = surfutils.Minify(width, i)
			levelHeight = surfutils.Minify(height, i)
		} else {
			levelWidth = surfutils.Minify(potWidth, i)
			levelHeight = surfutils.Minify(potHeight, i)
		}
		if i < 1 {
			levelDepth = surfutils.Minify(depth, i)
		} else {
			levelDepth = surfutils.Minify(potDepth, i)
		}

		if msaa {
			levelWidth *= 2
			levelHeight *= 2
		}

		levelWidth = surfutils.DivRoundUp(levelWidth, info.BlockWidth)
		levelHeight = surfutils.DivRoundUp(levelHeight, info.BlockHeight)

		if !tiled {
			slice.Tiling = TilingRaster
			if desc.Target == Target1D {
				levelWidth = surfutils.AlignUp(levelWidth, uint(64/cpp))
			}
		} else if (i != 0 || !uifTop) &&
			(levelWidth <= utileW || levelHeight <= utileH) {
			slice.Tiling = TilingLinearTile
			levelWidth = surfutils.AlignUp(levelWidth, uint(utileW))
			levelHeight = surfutils.AlignUp(levelHeight, uint(utileH))
		} else if (i != 0 || !uifTop) && levelWidth <= uifBlockW {
			slice.Tiling = TilingUBLinear1Column
			levelWidth = surfutils.AlignUp(levelWidth, uint(uifBlockW))
			levelHeight = surfutils.AlignUp(levelHeight, uint(uifBlockH))
		} else if (i != 0 || !uifTop) && levelWidth <= 2*uifBlockW {
			slice.Tiling = TilingUBLinear2Column
			levelWidth = surfutils.AlignUp(levelWidth, uint(2*uifBlockW))
			levelHeight = surfutils.AlignUp(levelHeight, uint(uifBlockH))
		} else {
			// We align the width to a 4-block column of UIF blocks, but we
			// only align height to UIF blocks.
			levelWidth = surfutils.AlignUp(levelWidth, uint(4*uifBlockW))
			levelHeight = surfutils.AlignUp(levelHeight, uint(uifBlockH))

			slice.UBPad = computeUBPad(cpp, levelHeight)
			levelHeight += slice.UBPad * uifBlockH

			// If the padding set us to be aligned to the page cache size,
			// then the HW will use the XOR bit on odd columns to get us
			// perfectly misaligned.
			if (levelHeight/uifBlockH)%pageCacheUBRows == 0 {
				slice.Tiling = TilingUIFXOR
			} else {
				slice.Tiling = TilingUIFNoXOR
			}
		}

		slice.Offset = offset
		slice.Stride = levelWidth * cpp
		slice.PaddedHeight = levelHeight
		slice.Size = levelHeight * slice.Stride

		sliceTotalSize := slice.Size * levelDepth

		// The HW aligns level 1's base to a page if any of level 1 or below
		// could be UIF XOR. The lower levels then inherit the alignment for
		// as long as necessary, thanks to being power of two aligned.
		if i == 1 &&
			levelWidth > 4*uifBlockW &&
			levelHeight > pageCacheMinus15UBRows*uifBlockH {
			sliceTotalSize = surfutils.AlignUp(sliceTotalSize, pageSize)
		}

		offset += sliceTotalSize
	}

	totalSize := offset

	// UIF/UBLINEAR levels need to be aligned to UIF blocks, and LT only needs
	// to be aligned to utile boundaries. Since tiles are laid out from small
	// to big in memory, we need to align the later UIF slices to UIF blocks
	// if they were preceded by non-UIF-block-aligned LT slices.
	//
	// We additionally align to 4k, which improves UIF XOR performance.
	pageAlignOffset := surfutils.AlignUp(levels[0].Offset, pageSize) - levels[0].Offset
	if pageAlignOffset != 0 {
		totalSize += pageAlignOffset
		for i := 0; i <= lastLevel; i++ {
			levels[i].Offset += pageAlignOffset
		}
	}

	// Arrays and cube textures have a stride which is the distance from one
	// full mipmap tree to the next (64b aligned). For 3D textures, the stride
	// is between depth slices of miplevel 0.
	var layerStride int
	if desc.Target != Target3D {
		layerStride = surfutils.AlignUp(levels[0].Offset+levels[0].Size, 64)
		totalSize += layerStride * (desc.ArrayLayers - 1)
	} else {
		layerStride = levels[0].Size
	}

	return &Layout{
		target:      desc.Target,
		imageFormat: desc.Format,
		cpp:         cpp,
		tiled:       tiled,

		width:       width,
		height:      height,
		depth:       depth,
		arrayLayers: desc.ArrayLayers,
		samples:     desc.sampleCount(),

		levels:      levels,
		layerStride: layerStride,
		totalSize:   totalSize,
	}
}

// logLayout reports a computed layout through the injected logger, one record
// per mip level.
func (p *Planner) logLayout(l *Layout, caller string) {
	ctx := context.Background()
	if !p.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	if l.target == TargetBuffer {
		p.logger.LogAttrs(ctx, slog.LevelDebug, "planned buffer",
			slog.String("caller", caller),
			slog.String("format", l.imageFormat.String()),
			slog.Int("width", l.width),
			slog.Int("size", l.totalSize))
		return
	}

	for i := range l.levels {
		slice := &l.levels[i]

		p.logger.LogAttrs(ctx, slog.LevelDebug, "planned level",
			slog.String("caller", caller),
			slog.String("target", l.target.String()),
			slog.String("format", l.imageFormat.String()),
			slog.Int("level", i),
			slog.String("tiling", slice.Tiling.String()),
			slog.Int("width", surfutils.Minify(l.width, i)),
			slog.Int("height", surfutils.Minify(l.height, i)),
			slog.Int("depth", surfutils.Minify(l.depth, i)),
			slog.Int("paddedWidth", slice.Stride/l.cpp),
			slog.Int("paddedHeight", slice.PaddedHeight),
			slog.Int("stride", slice.Stride),
			slog.Int("offset", slice.Offset))
	}
}

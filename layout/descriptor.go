package layout

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"

	"github.com/gpukit/surfplan/format"
)

// TargetKind is the dimensionality of a resource.
type TargetKind int32

const (
	TargetBuffer TargetKind = iota
	Target1D
	Target1DArray
	Target2D
	Target2DArray
	Target3D
	TargetCube
)

func (t TargetKind) String() string {
	switch t {
	case TargetBuffer:
		return "Buffer"
	case Target1D:
		return "1D"
	case Target1DArray:
		return "1DArray"
	case Target2D:
		return "2D"
	case Target2DArray:
		return "2DArray"
	case Target3D:
		return "3D"
	case TargetCube:
		return "Cube"
	}

	return "unknown"
}

// BindFlags describes how a resource will be consumed. The planner only cares
// to the extent that some consumers cannot read tiled memory.
type BindFlags int32

var bindFlagsMapping = common.NewFlagStringMapping[BindFlags]()

func (f BindFlags) Register(str string) {
	bindFlagsMapping.Register(f, str)
}

func (f BindFlags) String() string {
	return bindFlagsMapping.FlagsToString(f)
}

const (
	// BindLinear requests a raster-order layout even when a tiled layout would
	// be legal
	BindLinear BindFlags = 1 << iota
	// BindCursor marks hardware cursor images, which always scan out linearly
	BindCursor
	// BindScanout marks resources handed to the display controller
	BindScanout
	// BindShared marks resources whose backing memory will be exported to
	// another process or device
	BindShared
	// BindRenderTarget marks resources the rasterizer will write
	BindRenderTarget
	// BindSampled marks resources the texture units will read
	BindSampled
)

func init() {
	BindLinear.Register("BindLinear")
	BindCursor.Register("BindCursor")
	BindScanout.Register("BindScanout")
	BindShared.Register("BindShared")
	BindRenderTarget.Register("BindRenderTarget")
	BindSampled.Register("BindSampled")
}

// Descriptor describes a resource to plan a layout for. It is read-only to the
// planner: a Layout is derived from it and the descriptor can be discarded
// afterwards.
type Descriptor struct {
	Target TargetKind
	Format format.Format

	// Width, Height and Depth are the level-0 dimensions in texels. Buffers
	// and 1D targets must have Height and Depth of 1, everything except 3D
	// targets must have a Depth of 1.
	Width  int
	Height int
	Depth  int

	// MipLevels is the number of levels in the mip chain, at least 1
	MipLevels int
	// ArrayLayers is the number of array layers, at least 1. Cube targets
	// require a multiple of 6.
	ArrayLayers int
	// Samples is the sample count- 0 and 1 both mean single-sampled, and 4 is
	// the only supported multisample count
	Samples int

	Bind BindFlags
}

func (d *Descriptor) sampleCount() int {
	if d.Samples < 1 {
		return 1
	}

	return d.Samples
}

func (d *Descriptor) validate() (format.Info, error) {
	info, err := format.Lookup(d.Format)
	if err != nil {
		return format.Info{}, cerrors.Wrapf(InvalidDescriptorError, "%s", err.Error())
	}

	if d.Width < 1 || d.Height < 1 || d.Depth < 1 {
		return info, cerrors.Wrapf(InvalidDescriptorError, "dimensions %dx%dx%d contain a zero", d.Width, d.Height, d.Depth)
	}

	if d.MipLevels < 1 {
		return info, cerrors.Wrapf(InvalidDescriptorError, "mip level count is %d", d.MipLevels)
	}

	if d.ArrayLayers < 1 {
		return info, cerrors.Wrapf(InvalidDescriptorError, "array layer count is %d", d.ArrayLayers)
	}

	switch d.Target {
	case TargetBuffer:
		if d.Height != 1 || d.Depth != 1 || d.MipLevels != 1 || d.ArrayLayers != 1 {
			return info, cerrors.Wrapf(InvalidDescriptorError,
				"buffers are single-level 1-row resources, got %dx%d with %d levels and %d layers",
				d.Height, d.Depth, d.MipLevels, d.ArrayLayers)
		}
	case Target1D, Target1DArray:
		if d.Height != 1 || d.Depth != 1 {
			return info, cerrors.Wrapf(InvalidDescriptorError, "1D targets require height and depth of 1, got %dx%d", d.Height, d.Depth)
		}
	case Target2D, Target2DArray:
		if d.Depth != 1 {
			return info, cerrors.Wrapf(InvalidDescriptorError, "2D targets require a depth of 1, got %d", d.Depth)
		}
	case TargetCube:
		if d.Depth != 1 {
			return info, cerrors.Wrapf(InvalidDescriptorError, "cube targets require a depth of 1, got %d", d.Depth)
		}
		if d.ArrayLayers%6 != 0 {
			return info, cerrors.Wrapf(InvalidDescriptorError, "cube targets require a multiple of 6 layers, got %d", d.ArrayLayers)
		}
	case Target3D:
		if d.ArrayLayers != 1 {
			return info, cerrors.Wrapf(InvalidDescriptorError, "3D targets cannot be arrayed, got %d layers", d.ArrayLayers)
		}
	default:
		return info, cerrors.Wrapf(InvalidDescriptorError, "unknown target kind %d", int32(d.Target))
	}

	samples := d.sampleCount()
	if samples != 1 && samples != 4 {
		return info, cerrors.Wrapf(InvalidDescriptorError, "sample count must be 1 or 4, got %d", samples)
	}

	if samples > 1 {
		if d.Target != Target2D && d.Target != Target2DArray {
			return info, cerrors.Wrapf(InvalidDescriptorError, "multisampling requires a 2D target, got %s", d.Target.String())
		}
		if d.MipLevels != 1 {
			return info, cerrors.Wrapf(InvalidDescriptorError, "multisampled resources are single-level, got %d levels", d.MipLevels)
		}
		if !info.DepthStencil && info.RenderTargetBPP == 0 {
			return info, cerrors.Wrapf(InvalidDescriptorError, "format %s cannot be multisampled", d.Format.String())
		}
	}

	return info, nil
}

// resolveCPP derives the per-texel byte size the address generator works in.
// Multisampled color resources store the tile buffer's internal pixel size
// rather than the external format size; depth/stencil and single-sampled
// resources scale the format size by the sample count.
func (d *Descriptor) resolveCPP(info format.Info) int {
	samples := d.sampleCount()
	if samples <= 1 || info.DepthStencil {
		return info.TexelBytes * samples
	}

	return info.RenderTargetBPP
}

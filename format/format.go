package format

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/pkg/errors"
)

// UnknownFormatError is the error returned from Lookup when the requested format has no catalog entry
var UnknownFormatError error = errors.New("format is not present in the catalog")

// Format identifies a pixel format understood by the layout planner. The set is
// closed: it covers the formats the hardware address generator has block
// dimensions for.
type Format int32

const (
	Undefined Format = iota
	R8
	RG8
	RGBA8
	BGRA8
	R16F
	RG16F
	RGBA16F
	R32F
	RG32F
	RGBA32F
	D16
	D24S8
	D32F
	S8
	BC1
	BC2
	BC3
	ETC2RGB8
	ETC2RGBA8
)

func (f Format) String() string {
	switch f {
	case R8:
		return "R8"
	case RG8:
		return "RG8"
	case RGBA8:
		return "RGBA8"
	case BGRA8:
		return "BGRA8"
	case R16F:
		return "R16F"
	case RG16F:
		return "RG16F"
	case RGBA16F:
		return "RGBA16F"
	case R32F:
		return "R32F"
	case RG32F:
		return "RG32F"
	case RGBA32F:
		return "RGBA32F"
	case D16:
		return "D16"
	case D24S8:
		return "D24S8"
	case D32F:
		return "D32F"
	case S8:
		return "S8"
	case BC1:
		return "BC1"
	case BC2:
		return "BC2"
	case BC3:
		return "BC3"
	case ETC2RGB8:
		return "ETC2RGB8"
	case ETC2RGBA8:
		return "ETC2RGBA8"
	}
	return "Undefined"
}

// Info describes the memory footprint of a format.
type Info struct {
	// TexelBytes is the size in bytes of one block- for uncompressed formats,
	// one block is one texel
	TexelBytes int
	// BlockWidth and BlockHeight are the compressed block dimensions in texels.
	// Both are 1 for uncompressed formats.
	BlockWidth  int
	BlockHeight int
	// DepthStencil is true for depth and/or stencil formats, which derive their
	// multisampled texel size differently than color render targets
	DepthStencil bool
	// RenderTargetBPP is the internal bytes-per-pixel the tile buffer stores for
	// this format when it is bound as a color render target, or 0 if the format
	// cannot be a color render target
	RenderTargetBPP int
}

var catalog *swiss.Map[Format, Info]

func init() {
	catalog = swiss.NewMap[Format, Info](32)

	catalog.Put(R8, Info{TexelBytes: 1, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 4})
	catalog.Put(RG8, Info{TexelBytes: 2, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 4})
	catalog.Put(RGBA8, Info{TexelBytes: 4, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 4})
	catalog.Put(BGRA8, Info{TexelBytes: 4, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 4})
	catalog.Put(R16F, Info{TexelBytes: 2, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 4})
	catalog.Put(RG16F, Info{TexelBytes: 4, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 4})
	catalog.Put(RGBA16F, Info{TexelBytes: 8, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 8})
	catalog.Put(R32F, Info{TexelBytes: 4, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 4})
	catalog.Put(RG32F, Info{TexelBytes: 8, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 8})
	catalog.Put(RGBA32F, Info{TexelBytes: 16, BlockWidth: 1, BlockHeight: 1, RenderTargetBPP: 16})
	catalog.Put(D16, Info{TexelBytes: 2, BlockWidth: 1, BlockHeight: 1, DepthStencil: true})
	catalog.Put(D24S8, Info{TexelBytes: 4, BlockWidth: 1, BlockHeight: 1, DepthStencil: true})
	catalog.Put(D32F, Info{TexelBytes: 4, BlockWidth: 1, BlockHeight: 1, DepthStencil: true})
	catalog.Put(S8, Info{TexelBytes: 1, BlockWidth: 1, BlockHeight: 1, DepthStencil: true})
	catalog.Put(BC1, Info{TexelBytes: 8, BlockWidth: 4, BlockHeight: 4})
	catalog.Put(BC2, Info{TexelBytes: 16, BlockWidth: 4, BlockHeight: 4})
	catalog.Put(BC3, Info{TexelBytes: 16, BlockWidth: 4, BlockHeight: 4})
	catalog.Put(ETC2RGB8, Info{TexelBytes: 8, BlockWidth: 4, BlockHeight: 4})
	catalog.Put(ETC2RGBA8, Info{TexelBytes: 16, BlockWidth: 4, BlockHeight: 4})
}

// Lookup returns the footprint description for a format. All formats other than
// Undefined have an entry, and the catalog is never mutated after package
// initialization, so Lookup is safe for concurrent use.
func Lookup(f Format) (Info, error) {
	info, ok := catalog.Get(f)
	if !ok {
		return Info{}, cerrors.Wrapf(UnknownFormatError, "format value %d", int32(f))
	}

	return info, nil
}

// IsCompressed returns true when the format stores texels in multi-texel
// compressed blocks
func (f Format) IsCompressed() bool {
	info, err := Lookup(f)
	if err != nil {
		return false
	}

	return info.BlockWidth > 1 || info.BlockHeight > 1
}

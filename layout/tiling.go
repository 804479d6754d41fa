package layout

// TilingClass is the closed set of memory layouts the hardware address
// generator can walk. Which class a mip level uses depends only on the level's
// padded dimensions and the resource's texel size, so the planner assigns one
// per level.
type TilingClass int32

const (
	// TilingRaster is a plain linear layout, one row after another
	TilingRaster TilingClass = iota
	// TilingLinearTile lays out whole micro-tiles in raster order. Used for mip
	// tail levels no larger than a micro-tile in either dimension.
	TilingLinearTile
	// TilingUBLinear1Column is a single column of UIF blocks
	TilingUBLinear1Column
	// TilingUBLinear2Column is two columns of UIF blocks
	TilingUBLinear2Column
	// TilingUIFNoXOR is the block-interleaved layout with the bank-XOR
	// addressing bit disabled
	TilingUIFNoXOR
	// TilingUIFXOR is the block-interleaved layout with odd block columns
	// bank-flipped. Only legal when the padded height in block rows lands on a
	// page-cache boundary.
	TilingUIFXOR
)

func (c TilingClass) String() string {
	switch c {
	case TilingRaster:
		return "R"
	case TilingLinearTile:
		return "LT"
	case TilingUBLinear1Column:
		return "UB1"
	case TilingUBLinear2Column:
		return "UB2"
	case TilingUIFNoXOR:
		return "UIF"
	case TilingUIFXOR:
		return "UIF^"
	}

	return "unknown"
}

// strideAlign returns the smallest horizontal unit in bytes that a stride of
// this class must be a multiple of.
func (c TilingClass) strideAlign(cpp int) int {
	switch c {
	case TilingLinearTile:
		return utileWidth(cpp) * cpp
	case TilingUBLinear1Column, TilingUBLinear2Column, TilingUIFNoXOR, TilingUIFXOR:
		return 2 * utileWidth(cpp) * cpp
	}

	return cpp
}

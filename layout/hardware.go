package layout

// Addressing geometry of the rasterizer's memory interface. A micro-tile
// (utile) is always 64 bytes, a UIF block is 2x2 utiles, and a UIF block row
// spans the 4 block columns the block-interleaved classes stride across.
const (
	utileSize       = 64
	uifBlockSize    = 4 * utileSize
	uifBlockRowSize = 4 * uifBlockSize

	pageSize      = 4096
	pageCacheSize = 8 * pageSize

	pageUBRows             = pageSize / uifBlockRowSize
	pageUBRowsTimes15      = (pageUBRows * 3) >> 1
	pageCacheUBRows        = pageCacheSize / uifBlockRowSize
	pageCacheMinus15UBRows = pageCacheUBRows - pageUBRowsTimes15
)

// utileWidth returns the width in texels of a 64-byte micro-tile holding
// texels of the provided byte size.
func utileWidth(cpp int) int {
	switch cpp {
	case 1, 2:
		return 8
	case 4, 8:
		return 4
	case 16:
		return 2
	}

	return 0
}

// utileHeight returns the height in texels of a 64-byte micro-tile holding
// texels of the provided byte size.
func utileHeight(cpp int) int {
	switch cpp {
	case 1:
		return 8
	case 2, 4:
		return 4
	case 8:
		return 2
	case 16:
		return 2
	}

	return 0
}

package layout

// computeUBPad returns the number of extra UIF block rows to insert below a
// block-interleaved level of the provided padded height.
//
// The goal of the padding is to keep pages of the same bank number at least
// half a page away from each other vertically when crossing between columns
// of UIF blocks, which bounds the worst-case aliasing stalls the memory
// controller can hit.
func computeUBPad(cpp, height int) int {
	uifBlockH := utileHeight(cpp) * 2
	heightUB := height / uifBlockH

	heightOffsetInPC := heightUB % pageCacheUBRows

	// For the perfectly-aligned-for-UIF-XOR case, don't add any pad.
	if heightOffsetInPC == 0 {
		return 0
	}

	// Try padding up to where we're offset by at least half a page.
	if heightOffsetInPC < pageUBRowsTimes15 {
		// If we fit entirely in the page cache, don't pad.
		if heightUB < pageCacheUBRows {
			return 0
		}

		return pageUBRowsTimes15 - heightOffsetInPC
	}

	// If we're close to being aligned to page cache size, then round up and
	// rely on XOR.
	if heightOffsetInPC > pageCacheMinus15UBRows {
		return pageCacheUBRows - heightOffsetInPC
	}

	// Otherwise, we're far enough away (top and bottom) to not need any
	// padding.
	return 0
}

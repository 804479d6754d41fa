package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// cpp 4 has a 4-texel-tall utile, so a UIF block row is 8 texel rows.
const testUIFBlockH = 8

var ubPadTestCases = map[string]struct {
	HeightUB    int
	ExpectedPad int
}{
	"Page Cache Aligned Needs Nothing": {
		HeightUB:    32,
		ExpectedPad: 0,
	},
	"Multiple Of Page Cache Needs Nothing": {
		HeightUB:    96,
		ExpectedPad: 0,
	},
	"Small Surface Fits In Page Cache": {
		HeightUB:    3,
		ExpectedPad: 0,
	},
	"Just Past A Page Cache Boundary Pads To Half Page": {
		HeightUB:    33,
		ExpectedPad: 5,
	},
	"Nearly Half A Page Past Pads The Rest": {
		HeightUB:    37,
		ExpectedPad: 1,
	},
	"Middle Of The Page Cache Needs Nothing": {
		HeightUB:    40,
		ExpectedPad: 0,
	},
	"Exactly At The Far Threshold Needs Nothing": {
		HeightUB:    58,
		ExpectedPad: 0,
	},
	"Just Past The Far Threshold Rounds Up For XOR": {
		HeightUB:    59,
		ExpectedPad: 5,
	},
	"One Row Short Of A Boundary Rounds Up For XOR": {
		HeightUB:    63,
		ExpectedPad: 1,
	},
}

func TestComputeUBPad(t *testing.T) {
	for name, testCase := range ubPadTestCases {
		t.Run(name, func(t *testing.T) {
			pad := computeUBPad(4, testCase.HeightUB*testUIFBlockH)
			require.Equal(t, testCase.ExpectedPad, pad)
		})
	}
}

func TestComputeUBPadRange(t *testing.T) {
	// Padding never reaches a full page cache of block rows, and when the
	// rounds-up-for-XOR branch fires the result always lands on a page cache
	// boundary.
	for heightUB := 1; heightUB <= 4*pageCacheUBRows; heightUB++ {
		pad := computeUBPad(4, heightUB*testUIFBlockH)

		require.GreaterOrEqual(t, pad, 0, "heightUB %d", heightUB)
		require.Less(t, pad, pageCacheUBRows, "heightUB %d", heightUB)

		offset := heightUB % pageCacheUBRows
		if offset == 0 {
			require.Equal(t, 0, pad, "heightUB %d", heightUB)
		}
		if offset > pageCacheMinus15UBRows {
			require.Equal(t, 0, (heightUB+pad)%pageCacheUBRows, "heightUB %d", heightUB)
		}
	}
}

func TestComputeUBPadOtherTexelSizes(t *testing.T) {
	// cpp 1 has an 8-texel utile, so block rows are 16 texels tall.
	require.Equal(t, 0, computeUBPad(1, 32*16))
	require.Equal(t, 5, computeUBPad(1, 33*16))

	// cpp 16 has a 2-texel utile, so block rows are 4 texels tall.
	require.Equal(t, 0, computeUBPad(16, 32*4))
	require.Equal(t, 5, computeUBPad(16, 33*4))
}

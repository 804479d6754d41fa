package surfutils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	require.Equal(t, 0, AlignUp(0, 64))
	require.Equal(t, 64, AlignUp(1, 64))
	require.Equal(t, 64, AlignUp(64, 64))
	require.Equal(t, 128, AlignUp(65, 64))
	require.Equal(t, 4096, AlignUp(4000, 4096))
}

func TestAlignDown(t *testing.T) {
	require.Equal(t, 0, AlignDown(63, 64))
	require.Equal(t, 64, AlignDown(64, 64))
	require.Equal(t, 64, AlignDown(127, 64))
}

func TestNextPow2(t *testing.T) {
	require.Equal(t, 1, NextPow2(0))
	require.Equal(t, 1, NextPow2(1))
	require.Equal(t, 2, NextPow2(2))
	require.Equal(t, 4, NextPow2(3))
	require.Equal(t, 512, NextPow2(512))
	require.Equal(t, 1024, NextPow2(513))
}

func TestMinify(t *testing.T) {
	require.Equal(t, 1024, Minify(1024, 0))
	require.Equal(t, 512, Minify(1024, 1))
	require.Equal(t, 1, Minify(1024, 10))
	require.Equal(t, 1, Minify(1024, 20))
	require.Equal(t, 1, Minify(1, 1))

	// Power-of-two padding is defined relative to level 1, which matters for
	// odd base sizes: a level-0 dimension of 9 minifies to 4, not 5, before
	// rounding.
	require.Equal(t, 4, Minify(9, 1))
	require.Equal(t, 4, NextPow2(Minify(9, 1)))
}

func TestDivRoundUp(t *testing.T) {
	require.Equal(t, 1, DivRoundUp(1, 4))
	require.Equal(t, 1, DivRoundUp(4, 4))
	require.Equal(t, 2, DivRoundUp(5, 4))
}

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(64, "alignment"))
	require.NoError(t, CheckPow2(0, "alignment"))

	err := CheckPow2(65, "alignment")
	require.Error(t, err)
	require.True(t, errors.Is(err, PowerOfTwoError))
}

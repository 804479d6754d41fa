package surfutils

import (
	"math/bits"

	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint
}

func CheckPow2[T Number](number T, name string) error {
	if number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

func AlignUp(value int, alignment uint) int {
	return (value + int(alignment) - 1) & int(^(alignment - 1))
}

func AlignDown(value int, alignment uint) int {
	return value & int(^(alignment - 1))
}

// NextPow2 returns the smallest power of two that is greater than or equal to value.
// Values below 1 round up to 1.
func NextPow2(value int) int {
	if value <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(value-1))
}

// Minify halves a level-0 dimension the given number of times, clamping at 1.
func Minify(value, levels int) int {
	minified := value >> uint(levels)
	if minified < 1 {
		return 1
	}
	return minified
}

func DivRoundUp(numerator, denominator int) int {
	return (numerator + denominator - 1) / denominator
}

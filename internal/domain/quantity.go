package domain

import (
	"fmt"
	"math"
)

// Quantity is a stack size. Game stacks fit in 16 bits, so every computation
// that could leave that range fails with ErrQuantityOverflow instead of wrapping.
type Quantity = int16

// MaxQuantity is the largest representable quantity.
const MaxQuantity = math.MaxInt16

// AddQuantity returns a+b or ErrQuantityOverflow.
func AddQuantity(a, b Quantity) (Quantity, error) {
	sum := int32(a) + int32(b)
	if sum > math.MaxInt16 || sum < math.MinInt16 {
		return 0, fmt.Errorf("%w: %d + %d", ErrQuantityOverflow, a, b)
	}
	return Quantity(sum), nil
}

// MulQuantity returns a*b or ErrQuantityOverflow.
func MulQuantity(a, b Quantity) (Quantity, error) {
	product := int32(a) * int32(b)
	if product > math.MaxInt16 || product < math.MinInt16 {
		return 0, fmt.Errorf("%w: %d * %d", ErrQuantityOverflow, a, b)
	}
	return Quantity(product), nil
}

// ApplyDelta adds a signed delta to a stored quantity and clamps the result at zero.
func ApplyDelta(current Quantity, delta int32) (Quantity, error) {
	next := int32(current) + delta
	if next < 0 {
		next = 0
	}
	if next > math.MaxInt16 {
		return current, fmt.Errorf("%w: %d + %d", ErrQuantityOverflow, current, delta)
	}
	return Quantity(next), nil
}

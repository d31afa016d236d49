package kernel

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// ErrCapacityIsInvalid signals a capacity descriptor that is not one of
// B, M, S, BM, BS, MS, BMS.
var ErrCapacityIsInvalid = errs.NewValueIsInvalidError("capacity")

// Capacity is the set of order sizes a logistics center accepts.
// It is never empty once constructed.
type Capacity uint8

const allSizes = Capacity(1)<<uint(Small) | Capacity(1)<<uint(Medium) | Capacity(1)<<uint(Big)

// NewCapacity builds a capacity from explicit sizes.
func NewCapacity(sizes ...Size) (Capacity, error) {
	var c Capacity
	for _, s := range sizes {
		if err := s.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrCapacityIsInvalid, err)
		}
		c |= s.bit()
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

// ParseCapacity accepts the canonical descriptors B, M, S, BM, BS, MS and BMS.
// Letters must appear at most once and in B, M, S order.
func ParseCapacity(descriptor string) (Capacity, error) {
	var c Capacity
	for _, r := range descriptor {
		size, err := ParseSize(string(r))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrCapacityIsInvalid, descriptor)
		}
		c |= size.bit()
	}

	if c == 0 || c.String() != descriptor {
		return 0, fmt.Errorf("%w: %q", ErrCapacityIsInvalid, descriptor)
	}
	return c, nil
}

// Contains reports whether the center accepts orders of the given size.
func (c Capacity) Contains(size Size) bool {
	if size.Validate() != nil {
		return false
	}
	return c&size.bit() != 0
}

// Sizes lists the accepted sizes in B, M, S order.
func (c Capacity) Sizes() []Size {
	sizes := make([]Size, 0, len(sizeSymbols))
	for _, s := range Sizes() {
		if c.Contains(s) {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// Validate rejects the empty set and unknown bits.
func (c Capacity) Validate() error {
	if c == 0 || c&^allSizes != 0 {
		return fmt.Errorf("%w: %d", ErrCapacityIsInvalid, uint8(c))
	}
	return nil
}

// String renders the descriptor, e.g. "BMS".
func (c Capacity) String() string {
	var b strings.Builder
	for _, s := range c.Sizes() {
		b.WriteString(s.String())
	}
	return b.String()
}

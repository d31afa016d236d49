package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Size is the size class of an order.
type Size int

const (
	// UnknownSize catches uninitialized values.
	UnknownSize Size = iota
	Small
	Medium
	Big
)

// ErrSizeIsInvalid signals a size symbol other than S, M or B.
var ErrSizeIsInvalid = errs.NewValueIsInvalidError("size")

var sizeSymbols = map[Size]string{
	Small:  "S",
	Medium: "M",
	Big:    "B",
}

// Sizes lists every valid size, in the canonical descriptor order B, M, S.
func Sizes() []Size {
	return []Size{Big, Medium, Small}
}

// ParseSize converts a one-letter symbol into a Size.
func ParseSize(symbol string) (Size, error) {
	for size, s := range sizeSymbols {
		if s == symbol {
			return size, nil
		}
	}
	return UnknownSize, fmt.Errorf("%w: %q", ErrSizeIsInvalid, symbol)
}

// Validate rejects UnknownSize and out-of-range values.
func (s Size) Validate() error {
	if _, ok := sizeSymbols[s]; !ok {
		return fmt.Errorf("%w: %d", ErrSizeIsInvalid, int(s))
	}
	return nil
}

// String returns the one-letter symbol, or "Unknown".
func (s Size) String() string {
	if symbol, ok := sizeSymbols[s]; ok {
		return symbol
	}
	return "Unknown"
}

func (s Size) bit() Capacity {
	return Capacity(1) << uint(s)
}

package kernel

import (
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
)

// ErrIDIsNotAssigned is returned when validating the zero ID of an entity that
// has not been persisted yet.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("id must be assigned by storage")

// ID is the identity of an order or a logistics center. IDs are assigned by
// storage from a monotonically increasing sequence, so comparing two IDs also
// compares creation order.
//
// The zero value means "not persisted yet" and fails Validate.
type ID struct {
	value int64
}

// NewID wraps a storage-assigned identity. The value must be positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for literals in tests and fixtures. It panics on invalid input.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// ParseID parses a decimal identity, typically taken from a URL path.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identity for persistence and transport.
func (i ID) Int64() int64 {
	return i.value
}

// String implements fmt.Stringer.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsZero reports whether the ID has not been assigned yet.
func (i ID) IsZero() bool {
	return i.value == 0
}

// IsEqual compares two identities.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Less reports whether i was created before other.
func (i ID) Less(other ID) bool {
	return i.value < other.value
}

// Validate fails for an unassigned ID.
func (i ID) Validate() error {
	if i.value == 0 {
		return ErrIDIsNotAssigned
	}
	return nil
}

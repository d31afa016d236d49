package center

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrStatusIsInvalid signals a status other than AVAILABLE or OCCUPIED.
var ErrStatusIsInvalid = errs.NewValueIsInvalidError("status")

// Status is the operational status of a center.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Available centers are considered by batch assignment.
	Available

	// Occupied centers are skipped by batch assignment regardless of load.
	Occupied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Occupied:  "OCCUPIED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "AVAILABLE",
		Occupied:  "OCCUPIED",
	}
}

// ParseStatus converts "AVAILABLE" or "OCCUPIED" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrStatusIsInvalid, s)
}

// Validate returns ErrStatusIsInvalid for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d", ErrStatusIsInvalid, int(s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

package services

import (
	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
)

// SupportingCenters returns the centers whose capacity includes size, keeping input order.
// Centers are not mutated.
func SupportingCenters(size kernel.Size, centers []*center.Center) []*center.Center {
	out := make([]*center.Center, 0, len(centers))
	for _, c := range centers {
		if c.Supports(size) {
			out = append(out, c)
		}
	}
	return out
}

// CentersWithSpareLoad returns the centers with currentLoad < maxCapacity, keeping input order.
// Centers are not mutated.
func CentersWithSpareLoad(centers []*center.Center) []*center.Center {
	out := make([]*center.Center, 0, len(centers))
	for _, c := range centers {
		if c.HasSpareLoad() {
			out = append(out, c)
		}
	}
	return out
}

package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestSupportingCenters(t *testing.T) {
	big := newCenter(t, 1, "B", 0, 1, 0, 0)
	all := newCenter(t, 2, "BMS", 0, 1, 0, 1)
	small := newCenter(t, 3, "S", 0, 1, 0, 2)
	centers := []*center.Center{big, all, small}

	assert.Equal(t, []*center.Center{big, all}, services.SupportingCenters(kernel.Big, centers))
	assert.Equal(t, []*center.Center{all}, services.SupportingCenters(kernel.Medium, centers))
	assert.Equal(t, []*center.Center{all, small}, services.SupportingCenters(kernel.Small, centers))
	assert.Empty(t, services.SupportingCenters(kernel.UnknownSize, centers))
	assert.Empty(t, services.SupportingCenters(kernel.Small, nil))
}

func TestCentersWithSpareLoad(t *testing.T) {
	free := newCenter(t, 1, "S", 0, 2, 0, 0)
	almost := newCenter(t, 2, "S", 1, 2, 0, 1)
	full := newCenter(t, 3, "S", 2, 2, 0, 2)
	zero := newCenter(t, 4, "S", 0, 0, 0, 3)

	got := services.CentersWithSpareLoad([]*center.Center{free, almost, full, zero})

	assert.Equal(t, []*center.Center{free, almost}, got)
	assert.Equal(t, 2, full.CurrentLoad(), "filter must not mutate centers")
}

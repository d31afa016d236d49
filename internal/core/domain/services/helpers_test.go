package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newCenter(t *testing.T, id int64, capacity string, load, maxCapacity int, lat, lon float64) *center.Center {
	t.Helper()
	cp, err := kernel.ParseCapacity(capacity)
	require.NoError(t, err)
	coords, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)

	c, err := center.RestoreCenter(kernel.MustNewID(id), "Center"+kernel.MustNewID(id).String(),
		cp, center.Available, load, maxCapacity, coords)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, id int64, size kernel.Size, lat, lon float64) *order.Order {
	t.Helper()
	coords, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.MustNewID(id), 100+id, size, order.Pending, nil, coords)
	require.NoError(t, err)
	return o
}

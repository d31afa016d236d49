// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is indexed because every batch starts by listing the pending orders.
type OrderDTO struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	CustomerID     int64   `gorm:"not null"`
	Size           string  `gorm:"type:varchar(1);not null"`
	Status         string  `gorm:"type:varchar(16);not null;index"`
	AssignedCenter *string `gorm:"type:varchar(255)"`
	Latitude       float64 `gorm:"not null"`
	Longitude      float64 `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Int64(),
		CustomerID:     o.CustomerID(),
		Size:           o.Size().String(),
		Status:         o.Status().String(),
		AssignedCenter: o.AssignedCenter(),
		Latitude:       o.Coordinates().Latitude(),
		Longitude:      o.Coordinates().Longitude(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	size, err := kernel.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CustomerID, size, status, dto.AssignedCenter, coordinates)
}

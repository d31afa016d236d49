// Package centerrepo provides data transfer objects and mapping functions for center persistence.
// This package implements the repository pattern for the center domain aggregate, handling
// the conversion between domain entities and database representations.
package centerrepo

import (
	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
)

// CenterDTO represents the database structure for persisting center aggregates.
// Two centers can never share a position: latitude and longitude form a unique index.
type CenterDTO struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Capacity    string         `gorm:"type:varchar(3);not null"`
	Status      string         `gorm:"type:varchar(16);not null;index"`
	CurrentLoad int            `gorm:"not null"`
	MaxCapacity int            `gorm:"not null"`
	Coordinates CoordinatesDTO `gorm:"embedded"`
}

// TableName specifies the database table name for center entities.
func (CenterDTO) TableName() string {
	return "centers"
}

// CoordinatesDTO is the embedded, uniquely indexed position of a center.
type CoordinatesDTO struct {
	Latitude  float64 `gorm:"not null;uniqueIndex:idx_centers_coordinates"`
	Longitude float64 `gorm:"not null;uniqueIndex:idx_centers_coordinates"`
}

func fromDomain(c *center.Center) CenterDTO {
	return CenterDTO{
		ID:          c.ID().Int64(),
		Name:        c.Name(),
		Capacity:    c.Capacity().String(),
		Status:      c.Status().String(),
		CurrentLoad: c.CurrentLoad(),
		MaxCapacity: c.MaxCapacity(),
		Coordinates: CoordinatesDTO{
			Latitude:  c.Coordinates().Latitude(),
			Longitude: c.Coordinates().Longitude(),
		},
	}
}

// toDomain rebuilds the aggregate with RestoreCenter, so stored rows that break
// an invariant surface as errors instead of invalid aggregates.
func toDomain(dto CenterDTO) (*center.Center, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.ParseCapacity(dto.Capacity)
	if err != nil {
		return nil, err
	}

	status, err := center.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Coordinates.Latitude, dto.Coordinates.Longitude)
	if err != nil {
		return nil, err
	}

	return center.RestoreCenter(id, dto.Name, capacity, status, dto.CurrentLoad, dto.MaxCapacity, coordinates)
}

package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllCentersQueryHandler reads the center listing straight from the centers table.
type GetAllCentersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCentersQueryHandler creates a handler for center queries.
func NewGetAllCentersQueryHandler(db *gorm.DB) GetAllCentersQueryHandler {
	return GetAllCentersQueryHandler{db: db}
}

// Handle returns all centers sorted by ID. An empty table yields an empty, non-nil slice.
func (h GetAllCentersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCentersQuery,
) ([]GetAllCentersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	centers := make([]GetAllCentersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			capacity,
			status,
			current_load,
			max_capacity,
			latitude,
			longitude
		FROM centers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllCentersQueryResponse
		var latitude, longitude float64

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Capacity,
			&resp.Status,
			&resp.CurrentLoad,
			&resp.MaxCapacity,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		coordinates, coordErr := kernel.NewCoordinates(latitude, longitude)
		if coordErr != nil {
			return nil, coordErr
		}
		resp.Coordinates = coordinates

		centers = append(centers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return centers, nil
}

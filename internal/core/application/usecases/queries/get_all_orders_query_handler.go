package queries

import (
	"context"
	"database/sql"

	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the order listing straight from the orders table.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns all orders sorted by ID, which is also creation order.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			size,
			status,
			assigned_center,
			latitude,
			longitude
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var assignedCenter sql.NullString
		var latitude, longitude float64

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.Size,
			&resp.Status,
			&assignedCenter,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		if assignedCenter.Valid {
			name := assignedCenter.String
			resp.AssignedCenter = &name
		}

		coordinates, coordErr := kernel.NewCoordinates(latitude, longitude)
		if coordErr != nil {
			return nil, coordErr
		}
		resp.Coordinates = coordinates

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

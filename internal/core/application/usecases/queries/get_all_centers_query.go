// Package queries contains read-only operations over the dispatch read model.
// Queries bypass the aggregates and read rows directly, as nothing is modified.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllCentersQueryIsNotConstructed = errors.New(
	"GetAllCentersQuery must be created via NewGetAllCentersQuery constructor",
)

// GetAllCentersQuery retrieves every registered logistics center.
//
// Example:
//
//	query := NewGetAllCentersQuery()
//	handler := NewGetAllCentersQueryHandler(db)
//
//	centers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get centers: %w", err)
//	}
type GetAllCentersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCentersQuery creates a parameterless query over all centers.
func NewGetAllCentersQuery() GetAllCentersQuery {
	return GetAllCentersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllCentersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCentersQueryIsNotConstructed)
}

// GetAllCentersQueryResponse is one row of the center listing.
type GetAllCentersQueryResponse struct {
	ID          int64
	Name        string
	Capacity    string
	Status      string
	CurrentLoad int
	MaxCapacity int
	Coordinates kernel.Coordinates
}

package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// Client-facing messages of the well-known failures.
const (
	messageInvalidCapacity    = "Invalid capacity value"
	messageInvalidStatus      = "Invalid status value"
	messageInvalidSize        = "Invalid size value"
	messageEmptyCustomerID    = "Empty customerId value"
	messageEmptyCoordinates   = "Empty coordinates values"
	messageCoordinatesTaken   = "There is already a logistics center in that position."
	messageLoadExceeds        = "Current load cannot exceed max capacity."
	messageCenterNotFound     = "Center not found."
	messageNoPendingOrders    = "There is no pending orders at this time"
	messageNoAvailableCenters = "There are no available centers at this time"
	messageInvalidBody        = "Invalid request body"
	messageInternal           = "Internal server error"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// knownErrors is checked in order; the first match wins, which matters for
// joined validation errors.
var knownErrors = []errorMapping{
	{kernel.ErrCapacityIsInvalid, http.StatusBadRequest, messageInvalidCapacity},
	{center.ErrStatusIsInvalid, http.StatusBadRequest, messageInvalidStatus},
	{kernel.ErrSizeIsInvalid, http.StatusBadRequest, messageInvalidSize},
	{order.ErrCustomerIDIsRequired, http.StatusBadRequest, messageEmptyCustomerID},
	{kernel.ErrCoordinatesAreNotConstructed, http.StatusBadRequest, messageEmptyCoordinates},
	{center.ErrCoordinatesTaken, http.StatusConflict, messageCoordinatesTaken},
	{center.ErrLoadExceedsCapacity, http.StatusConflict, messageLoadExceeds},
	{services.ErrNoPendingOrders, http.StatusConflict, messageNoPendingOrders},
	{services.ErrNoAvailableCenters, http.StatusConflict, messageNoAvailableCenters},
	{errs.ErrObjectNotFound, http.StatusNotFound, messageCenterNotFound},
}

// toError maps a use case error to a status code and a response body.
// Validation errors without a dedicated message carry their own text;
// anything unrecognized becomes a 500 without details.
func toError(err error) (int, Error) {
	for _, m := range knownErrors {
		if errors.Is(err, m.target) {
			return m.status, Error{Code: m.status, Message: m.message}
		}
	}

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, Error{Code: http.StatusConflict, Message: err.Error()}
	default:
		return http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: messageInternal}
	}
}

func newError(status int, message string) Error {
	return Error{Code: status, Message: message}
}

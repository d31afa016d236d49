package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// Failure reasons reported to the BatchRecorder.
const (
	FailureNoPendingOrders    = "no_pending_orders"
	FailureNoAvailableCenters = "no_available_centers"
	FailureError              = "error"
)

// AssignOrdersCommandHandler runs one batch assignment inside a single transaction:
// lock, read the pending orders and the available centers, run the assignment
// engine, then write every assigned order and its center.
//
// Batches never interleave. A process-wide mutex serializes batches started by
// this handler, and the storage lock taken by LockAssignments serializes batches
// of other processes.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(uowFactory, recorder, logger)
//	assignments, err := handler.Handle(ctx, NewAssignOrdersCommand(TriggerHTTP))
//	switch {
//	case errors.Is(err, services.ErrNoPendingOrders):
//	    log.Println("No pending orders")
//	case errors.Is(err, services.ErrNoAvailableCenters):
//	    log.Println("No available centers")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrdersCommandHandler struct {
	uowFactory AssignmentUoWFactory
	engine     services.AssignmentEngine
	recorder   BatchRecorder
	logger     *slog.Logger
	mu         *sync.Mutex
}

// NewAssignOrdersCommandHandler creates a handler for batch assignment.
// Handlers copied from the returned value share the same mutex.
func NewAssignOrdersCommandHandler(
	uowFactory AssignmentUoWFactory,
	recorder BatchRecorder,
	logger *slog.Logger,
) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewAssignmentEngine(),
		recorder:   recorder,
		logger:     logger.With("component", "AssignOrdersCommandHandler"),
		mu:         &sync.Mutex{},
	}
}

// Handle runs the batch and returns one assignment per pending order, oldest first.
// Returns services.ErrNoPendingOrders or services.ErrNoAvailableCenters when the
// batch cannot start. Storage errors are returned unchanged and roll the batch back.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) ([]services.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	start := time.Now()
	assignments, err := h.run(ctx)
	if err != nil {
		h.recorder.ObserveFailure(failureReason(err))
		return nil, err
	}

	assigned := 0
	for _, a := range assignments {
		if a.IsAssigned() {
			assigned++
		}
	}
	duration := time.Since(start)
	h.recorder.ObserveBatch(assigned, len(assignments)-assigned, duration)
	h.logger.InfoContext(ctx, "batch assignment finished",
		"trigger", cmd.Trigger(),
		"orders", len(assignments),
		"assigned", assigned,
		"rejected", len(assignments)-assigned,
		"duration", duration,
	)

	return assignments, nil
}

func (h AssignOrdersCommandHandler) run(ctx context.Context) ([]services.Assignment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LockAssignments(ctx); err != nil {
		return nil, err
	}

	centerRepo := uow.CenterRepository()
	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	centers, err := centerRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := h.engine.AssignAll(orders, centers)
	if err != nil {
		return nil, err
	}

	centersByID := make(map[kernel.ID]*center.Center, len(centers))
	for _, c := range centers {
		centersByID[c.ID()] = c
	}

	for i, a := range assignments {
		if !a.IsAssigned() {
			continue
		}

		if err = orderRepo.Update(ctx, orders[i]); err != nil {
			return nil, err
		}

		c, ok := centersByID[a.CenterID]
		if !ok {
			return nil, fmt.Errorf("center %s of order %s is not in the batch", a.CenterID, a.OrderID)
		}
		if err = centerRepo.Update(ctx, c); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assignments, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, services.ErrNoPendingOrders):
		return FailureNoPendingOrders
	case errors.Is(err, services.ErrNoAvailableCenters):
		return FailureNoAvailableCenters
	default:
		return FailureError
	}
}

package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AssignOrdersHandler runs one batch assignment.
type AssignOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.AssignOrdersCommand) ([]services.Assignment, error)
}

// OrderAssignmentJob manages the scheduled batch assignment of pending orders.
type OrderAssignmentJob struct {
	handler  AssignOrdersHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderAssignmentJob creates a job that runs the batch on the given cron schedule.
func NewOrderAssignmentJob(schedule string, handler AssignOrdersHandler, logger *slog.Logger) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_assignment_job"),
	}
}

// Start registers the batch on the schedule and starts the scheduler.
// An empty schedule leaves the job disabled.
func (j *OrderAssignmentJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Order assignment job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *OrderAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}

func (j *OrderAssignmentJob) run() {
	ctx := context.Background()
	cmd := commands.NewAssignOrdersCommand(commands.TriggerSchedule)

	if _, err := j.handler.Handle(ctx, cmd); err != nil {
		// Only log errors that are not expected business scenarios
		if !errors.Is(err, services.ErrNoPendingOrders) && !errors.Is(err, services.ErrNoAvailableCenters) {
			j.logger.ErrorContext(ctx, "Order assignment job failed", "error", err)
		}
	}
}

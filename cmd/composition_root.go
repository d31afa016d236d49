package cmd

import (
	"context"
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics

	assignOrders *commands.AssignOrdersCommandHandler
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	m := metrics.New()
	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, m),
		logger:     logger,
		metrics:    m,
	}
}

func (c *CompositionRoot) CreateCreateCenterCommandHandler() commands.CreateCenterCommandHandler {
	var f commands.CenterUoWFactory = FuncCenterUoWFactory(func() commands.CenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCenterCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCenterCommandHandler() commands.UpdateCenterCommandHandler {
	var f commands.CenterUoWFactory = FuncCenterUoWFactory(func() commands.CenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCenterCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCenterCommandHandler() commands.DeleteCenterCommandHandler {
	var f commands.CenterUoWFactory = FuncCenterUoWFactory(func() commands.CenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCenterCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateAssignOrdersCommandHandler returns the single batch handler shared by
// the HTTP endpoint and the scheduled job, so both use one mutex.
func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	if c.assignOrders == nil {
		var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
			return c.uowFactory.Create()
		})
		handler := commands.NewAssignOrdersCommandHandler(f, c.metrics, c.logger)
		c.assignOrders = &handler
	}
	return *c.assignOrders
}

func (c *CompositionRoot) CreateGetAllCentersQueryHandler() queries.GetAllCentersQueryHandler {
	return queries.NewGetAllCentersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.config.AssignmentSchedule, c.CreateAssignOrdersCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCenter:  c.CreateCreateCenterCommandHandler(),
		UpdateCenter:  c.CreateUpdateCenterCommandHandler(),
		DeleteCenter:  c.CreateDeleteCenterCommandHandler(),
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		AssignOrders:  c.CreateAssignOrdersCommandHandler(),
		GetAllCenters: c.CreateGetAllCentersQueryHandler(),
		GetAllOrders:  c.CreateGetAllOrdersQueryHandler(),
	})

	return httpin.NewRouter(ctx, server, httpin.RouterConfig{
		Logger:              c.logger,
		Metrics:             c.metrics,
		AssignmentRateLimit: c.config.AssignmentRateLimit,
	})
}

type FuncCenterUoWFactory func() commands.CenterUoW

func (f FuncCenterUoWFactory) Create() commands.CenterUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

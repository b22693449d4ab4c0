package cmd

import (
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateReportTransitStatusCommandHandler() commands.ReportTransitStatusCommandHandler {
	return commands.NewReportTransitStatusCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateRefreshAgentPerformanceCommandHandler() commands.RefreshAgentPerformanceCommandHandler {
	var f commands.PerformanceUoWFactory = FuncPerformanceUoWFactory(func() commands.PerformanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshAgentPerformanceCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBacklogQueryHandler() queries.GetBacklogQueryHandler {
	return queries.NewGetBacklogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentQueueQueryHandler() queries.GetAgentQueueQueryHandler {
	return queries.NewGetAgentQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentDeliveriesQueryHandler() queries.GetAgentDeliveriesQueryHandler {
	return queries.NewGetAgentDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerHistoryQueryHandler() queries.GetCustomerHistoryQueryHandler {
	return queries.NewGetCustomerHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryKPIQueryHandler() queries.GetDeliveryKPIQueryHandler {
	return queries.NewGetDeliveryKPIQueryHandler(c.gormDB)
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPerformanceUoWFactory func() commands.PerformanceUoW

func (f FuncPerformanceUoWFactory) Create() commands.PerformanceUoW {
	return f()
}

package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Persists the order and returns the store-generated order id.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Creates the order with the current timestamp and persists it within a
// transaction, re-driving the transaction once on transient storage
// contention. Returns the id the store generated for the new order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return retryTransientData(ctx, func() (kernel.OrderID, error) {
		return h.handle(ctx, cmd)
	})
}

func (h *CreateOrderCommandHandler) handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderID, error) {
	aggregate, err := order.NewOrder(
		cmd.CustomerName(), cmd.Items(), cmd.Address(), cmd.TotalPrice(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

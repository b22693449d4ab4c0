package assignment

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	// UnknownCustomerName is the sentinel recorded when the order store has no
	// customer name for the assigned order. Assignment proceeds in this
	// degraded mode rather than blocking fulfilment on reporting data.
	UnknownCustomerName = "unknown"

	// defaultNote is the action note recorded when an assignment is created.
	defaultNote = "Being Done"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
	// created through the NewAssignment or RestoreAssignment factory methods.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment constructor")

	// ErrInvalidTransition is returned when a lifecycle operation is applied to an
	// assignment whose current status does not permit it. Losers of a concurrent
	// status race receive this error as well: the order is no longer available in
	// the state the caller observed.
	ErrInvalidTransition = errors.New("invalid assignment status transition")

	// ErrAlreadyAssigned is returned when an order already has an active assignment.
	ErrAlreadyAssigned = errors.New("order already has an active assignment")

	// ErrNotAssignedAgent is returned when an agent attempts to act on a delivery
	// that belongs to a different agent.
	ErrNotAssignedAgent = errors.New("delivery is assigned to a different agent")

	// ErrScheduledTimeIsRequired is returned when an assignment is created without
	// a scheduled delivery time.
	ErrScheduledTimeIsRequired = errs.NewValueIsRequiredError("scheduled delivery time")
)

// Assignment is the aggregate root for the order fulfilment lifecycle.
// It binds one order to one delivery agent and is the single source of truth
// for the paired (workflow, transit) status machine. The two persisted ledger
// tables, the agent-facing assignment record and the delivery tracking record,
// are write-through projections of this aggregate and are always written in
// the same transaction, so they cannot drift apart.
//
// Key invariants:
//   - At most one active assignment exists per order id
//   - The transit status is always derivable from the workflow status:
//     New↔Pending, InProgress↔InTransit, Completed↔Delivered;
//     Cancelled terminates the assignment on the transit side
//   - The delivery time is set exactly when the delivery reaches Delivered
//   - The delivery time is never before the pickup time
type Assignment struct {
	// id identifies the assignment record; both projection rows share it
	id kernel.UUID

	// orderID references the order being fulfilled
	orderID kernel.OrderID

	// agentID references the delivery agent responsible for the order
	agentID kernel.AgentID

	// customerName is the denormalized display name for the agent dashboard,
	// resolved from the order store at assignment time
	customerName string

	// note is the free-text action note shown on the agent dashboard
	note string

	// workflow is the agent-facing workflow status
	workflow WorkflowStatus

	// transit is the physical fulfilment status
	transit TransitStatus

	// pickupTime is when the order was handed to the agent
	pickupTime time.Time

	// scheduledDeliveryTime is the promised delivery deadline
	scheduledDeliveryTime time.Time

	// deliveryTime is when the order was actually delivered; nil until then
	deliveryTime *time.Time

	// isConstructed ensures the assignment was created via a factory method
	isConstructed bool
}

// NewAssignment creates a fresh assignment binding an order to an agent.
// The assignment starts in (New, Pending) with the pickup time stamped now.
// Pass UnknownCustomerName when the order store could not resolve the
// customer; an empty name is rejected.
func NewAssignment(
	id kernel.UUID,
	orderID kernel.OrderID,
	agentID kernel.AgentID,
	customerName string,
	pickupTime time.Time,
	scheduledDeliveryTime time.Time,
) (*Assignment, error) {
	a := &Assignment{
		workflow:      New,
		transit:       Pending,
		note:          defaultNote,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setAgentID(agentID),
		a.setCustomerName(customerName),
		a.setTimes(pickupTime, scheduledDeliveryTime),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment aggregate from its persisted
// projections. Statuses are taken as stored; the restored aggregate behaves
// identically to one created through normal domain operations.
func RestoreAssignment(
	id kernel.UUID,
	orderID kernel.OrderID,
	agentID kernel.AgentID,
	customerName string,
	note string,
	workflow WorkflowStatus,
	transit TransitStatus,
	pickupTime time.Time,
	scheduledDeliveryTime time.Time,
	deliveryTime *time.Time,
) (*Assignment, error) {
	a := &Assignment{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setAgentID(agentID),
		a.setCustomerName(customerName),
		a.setTimes(pickupTime, scheduledDeliveryTime),
		workflow.Validate(),
		transit.Validate(),
	); err != nil {
		return nil, err
	}

	a.workflow = workflow
	a.transit = transit
	a.deliveryTime = deliveryTime

	return a, nil
}

// Validate ensures the Assignment was properly constructed through a factory method.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment record identifier shared by both projection rows.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the id of the order being fulfilled.
func (a *Assignment) OrderID() kernel.OrderID {
	return a.orderID
}

// AgentID returns the id of the responsible delivery agent.
func (a *Assignment) AgentID() kernel.AgentID {
	return a.agentID
}

// CustomerName returns the denormalized customer display name.
func (a *Assignment) CustomerName() string {
	return a.customerName
}

// Note returns the free-text action note.
func (a *Assignment) Note() string {
	return a.note
}

// WorkflowStatus returns the current agent-facing workflow status.
func (a *Assignment) WorkflowStatus() WorkflowStatus {
	return a.workflow
}

// TransitStatus returns the current physical fulfilment status.
func (a *Assignment) TransitStatus() TransitStatus {
	return a.transit
}

// PickupTime returns when the order was handed to the agent.
func (a *Assignment) PickupTime() time.Time {
	return a.pickupTime
}

// ScheduledDeliveryTime returns the promised delivery deadline.
func (a *Assignment) ScheduledDeliveryTime() time.Time {
	return a.scheduledDeliveryTime
}

// DeliveryTime returns when the order was delivered, or nil if it has not been.
func (a *Assignment) DeliveryTime() *time.Time {
	return a.deliveryTime
}

// IsTerminal reports whether the assignment permits no further transitions.
// A delivered or cancelled assignment is terminal; terminal assignments no
// longer count as active for the one-active-assignment-per-order invariant.
func (a *Assignment) IsTerminal() bool {
	return a.workflow.IsTerminal() || a.transit.IsTerminal()
}

// Accept records the agent taking responsibility for the delivery.
//
// Precondition: the workflow status is New and the delivery has not reached a
// terminal transit status. The workflow moves to InProgress and the transit
// status to InTransit in the same step. A cancelled delivery cannot be
// accepted even while its workflow record still reads New.
func (a *Assignment) Accept() error {
	if a.transit.IsTerminal() {
		return fmt.Errorf("%w: delivery is already %s", ErrInvalidTransition, a.transit)
	}

	newWorkflow, err := a.workflow.Accept()
	if err != nil {
		return err
	}

	a.workflow = newWorkflow
	a.transit = InTransit
	return nil
}

// ValidateReject checks that the assignment may still be rejected.
// Rejection removes the aggregate, projections included, freeing the order
// for re-assignment; the caller performs the deletion after this check.
func (a *Assignment) ValidateReject() error {
	if a.transit.IsTerminal() {
		return fmt.Errorf("%w: delivery is already %s", ErrInvalidTransition, a.transit)
	}

	return a.workflow.ValidateReject()
}

// Complete records the successful delivery of the order.
//
// Precondition: the workflow status is InProgress and the delivery has not
// reached a terminal transit status. The workflow moves to Completed, the
// transit status to Delivered, and the delivery time is stamped. The delivery
// time never precedes the pickup time. A cancelled delivery cannot be
// completed afterwards.
func (a *Assignment) Complete(deliveredAt time.Time) error {
	if a.transit.IsTerminal() {
		return fmt.Errorf("%w: delivery is already %s", ErrInvalidTransition, a.transit)
	}

	newWorkflow, err := a.workflow.Complete()
	if err != nil {
		return err
	}

	if deliveredAt.Before(a.pickupTime) {
		deliveredAt = a.pickupTime
	}

	a.workflow = newWorkflow
	a.transit = Delivered
	a.deliveryTime = &deliveredAt
	return nil
}

// ReportTransit applies an agent-reported transit status through the free-form
// status channel of the agent dashboard.
//
// The reporting agent must be the assigned agent; otherwise ErrNotAssignedAgent
// is returned. The transit move is validated against the transit state machine,
// and the workflow status is re-derived from the new transit status so the two
// ledgers stay in lockstep regardless of which channel wrote last. Reporting
// the status the record already carries is accepted as a no-op, since the
// dashboard resends its current state. Reporting Delivered stamps the
// delivery time.
func (a *Assignment) ReportTransit(agentID kernel.AgentID, target TransitStatus, reportedAt time.Time) error {
	if agentID != a.agentID {
		return ErrNotAssignedAgent
	}

	if target == a.transit {
		return nil
	}

	newTransit, err := a.transit.TransitionTo(target)
	if err != nil {
		return err
	}

	a.transit = newTransit
	if workflow, ok := workflowForTransit(newTransit); ok {
		a.workflow = workflow
	}

	if newTransit == Delivered && a.deliveryTime == nil {
		if reportedAt.Before(a.pickupTime) {
			reportedAt = a.pickupTime
		}
		a.deliveryTime = &reportedAt
	}

	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.orderID = id
	return nil
}

func (a *Assignment) setAgentID(id kernel.AgentID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.agentID = id
	return nil
}

func (a *Assignment) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	a.customerName = name
	return nil
}

func (a *Assignment) setTimes(pickupTime, scheduledDeliveryTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewValueIsRequiredError("pickup time")
	}
	if scheduledDeliveryTime.IsZero() {
		return ErrScheduledTimeIsRequired
	}
	a.pickupTime = pickupTime
	a.scheduledDeliveryTime = scheduledDeliveryTime
	return nil
}

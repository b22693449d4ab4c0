package assignment

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// WorkflowStatus represents the agent-facing workflow state of an assignment.
// It implements a state machine with defined transitions to ensure assignments
// follow the correct fulfilment workflow.
//
// State transitions:
//
//	New ──> InProgress ──> Completed
//	 │
//	 └──> (rejected: record removed)
//
// The string representations match the values the assignment ledger persists.
type WorkflowStatus int

const (
	// WorkflowUnknown represents an invalid or undefined workflow status.
	// This value (0) helps catch uninitialized WorkflowStatus values.
	WorkflowUnknown WorkflowStatus = iota

	// New is the initial status when an order is assigned to an agent.
	// Assignments in this status are waiting for the agent to accept or reject.
	New

	// InProgress indicates the agent accepted the assignment and is delivering.
	InProgress

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

func getWorkflowStatusStrings() map[WorkflowStatus]string {
	return map[WorkflowStatus]string{
		WorkflowUnknown: "Unknown",
		New:             "New",
		InProgress:      "In Progress",
		Completed:       "Completed",
	}
}

func getValidWorkflowStatusStrings() map[WorkflowStatus]string {
	//nolint:exhaustive // WorkflowUnknown is intentionally excluded as it's invalid
	return map[WorkflowStatus]string{
		New:        "New",
		InProgress: "In Progress",
		Completed:  "Completed",
	}
}

// WorkflowStatusFromString parses a persisted workflow status string.
// Returns an error for anything that is not one of the valid status names.
func WorkflowStatusFromString(s string) (WorkflowStatus, error) {
	for status, str := range getValidWorkflowStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return WorkflowUnknown, errs.NewValueIsInvalidErrorWithCause("workflow status is invalid",
		fmt.Errorf("%q is not a valid workflow status", s))
}

// Validate checks if the WorkflowStatus value is valid.
// Valid statuses are: New, InProgress, Completed.
func (s WorkflowStatus) Validate() error {
	if _, ok := getValidWorkflowStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("workflow status is invalid",
			fmt.Errorf("%d is not a valid workflow status", s))
	}
	return nil
}

// String returns the persisted name of the status. Implements fmt.Stringer.
func (s WorkflowStatus) String() string {
	if str, ok := getWorkflowStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further workflow transitions are permitted.
func (s WorkflowStatus) IsTerminal() bool {
	return s == Completed
}

// Accept transitions the status to InProgress.
//
// Valid transitions:
//   - New -> InProgress
//
// Any other starting status fails: re-accepting an already accepted or
// completed assignment is a rejected precondition, which is what lets the
// loser of a concurrent accept race observe that the order is taken.
func (s WorkflowStatus) Accept() (WorkflowStatus, error) {
	if s != New {
		return 0, fmt.Errorf("%w: cannot accept assignment in status %s", ErrInvalidTransition, s)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
func (s WorkflowStatus) Complete() (WorkflowStatus, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: cannot complete assignment in status %s", ErrInvalidTransition, s)
	}
	return Completed, nil
}

// ValidateReject checks that the assignment may still be rejected.
// Only New assignments can be rejected; once accepted the agent is committed.
func (s WorkflowStatus) ValidateReject() error {
	if s != New {
		return fmt.Errorf("%w: cannot reject assignment in status %s", ErrInvalidTransition, s)
	}
	return nil
}

// TransitStatus represents the physical fulfilment state of the delivery,
// tracked alongside the workflow status and kept in lockstep with it.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are final states.
type TransitStatus int

const (
	// TransitUnknown represents an invalid or undefined transit status.
	TransitUnknown TransitStatus = iota

	// Pending indicates the delivery has been scheduled but not picked up.
	Pending

	// InTransit indicates the agent is carrying the order to the customer.
	InTransit

	// Delivered indicates the order reached the customer. Final state.
	Delivered

	// Cancelled indicates the delivery was abandoned. Final state.
	Cancelled
)

func getTransitStatusStrings() map[TransitStatus]string {
	return map[TransitStatus]string{
		TransitUnknown: "Unknown",
		Pending:        "Pending",
		InTransit:      "In Transit",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getValidTransitStatusStrings() map[TransitStatus]string {
	//nolint:exhaustive // TransitUnknown is intentionally excluded as it's invalid
	return map[TransitStatus]string{
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// transitTransitions defines the allowed transit status moves.
var transitTransitions = map[TransitStatus][]TransitStatus{
	Pending:   {InTransit, Cancelled},
	InTransit: {Delivered, Cancelled},
}

// TransitStatusFromString parses a persisted transit status string.
// Returns an error for anything that is not one of the valid status names.
func TransitStatusFromString(s string) (TransitStatus, error) {
	for status, str := range getValidTransitStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return TransitUnknown, errs.NewValueIsInvalidErrorWithCause("transit status is invalid",
		fmt.Errorf("%q is not a valid transit status", s))
}

// Validate checks if the TransitStatus value is valid.
// Valid statuses are: Pending, InTransit, Delivered, Cancelled.
func (s TransitStatus) Validate() error {
	if _, ok := getValidTransitStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transit status is invalid",
			fmt.Errorf("%d is not a valid transit status", s))
	}
	return nil
}

// String returns the persisted name of the status. Implements fmt.Stringer.
func (s TransitStatus) String() string {
	if str, ok := getTransitStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transit transitions are permitted.
func (s TransitStatus) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates and performs a transit status move.
// Returns the target status on success, or ErrInvalidTransition when the move
// is not in the allowed transition set.
func (s TransitStatus) TransitionTo(target TransitStatus) (TransitStatus, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	for _, allowed := range transitTransitions[s] {
		if allowed == target {
			return target, nil
		}
	}
	return 0, fmt.Errorf("%w: cannot move delivery from %s to %s", ErrInvalidTransition, s, target)
}

// workflowForTransit maps a transit status to the workflow status it implies.
// The second return value is false for Cancelled, which terminates the
// assignment without a corresponding workflow state.
func workflowForTransit(t TransitStatus) (WorkflowStatus, bool) {
	switch t {
	case Pending:
		return New, true
	case InTransit:
		return InProgress, true
	case Delivered:
		return Completed, true
	default:
		return WorkflowUnknown, false
	}
}

// Package assignment provides the aggregate root and state machines for the
// order fulfilment lifecycle in the food delivery system.
//
// The package includes:
//   - Assignment: The aggregate root binding one order to one delivery agent
//   - WorkflowStatus: The agent-facing workflow state machine (New -> In Progress -> Completed)
//   - TransitStatus: The physical fulfilment state machine (Pending -> In Transit -> Delivered/Cancelled)
//
// The historical design kept the two status fields in two independently
// written tables, which let them drift apart (accepted workflow with a still
// Pending tracking row, rejected assignments leaving orphaned tracking rows).
// Here both statuses live on one aggregate and every transition updates the
// pair together, so divergence is impossible by construction. Persistence
// writes the two legacy-shaped tables as projections of this aggregate inside
// a single transaction.
//
// Key business rules:
//   - An order has at most one active assignment at a time
//   - Only New assignments can be accepted or rejected
//   - Only In Progress assignments can be completed
//   - Rejection removes the assignment entirely, freeing the order for re-assignment
//   - Agent-reported transit changes are authorized against the assigned agent
//     and re-derive the workflow status, keeping the pair in lockstep
package assignment

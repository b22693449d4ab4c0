package http

import "time"

// Error is the body returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerName string  `json:"customerName"`
	Items        string  `json:"items"`
	Address      string  `json:"address"`
	TotalPrice   float64 `json:"totalPrice"`
}

// CreateOrderResponse carries the id of the created order.
type CreateOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

// AssignOrderRequest is the body of POST /api/v1/assignments.
type AssignOrderRequest struct {
	OrderID               int64     `json:"orderId"`
	AgentID               int64     `json:"agentId"`
	ScheduledDeliveryTime time.Time `json:"scheduledDeliveryTime"`
}

// AssignOrderResponse carries the id of the created delivery record.
type AssignOrderResponse struct {
	DeliveryID string `json:"deliveryId"`
}

// ReportTransitStatusRequest is the body of the agent status report endpoint.
// Status is one of the transit status strings, e.g. "In Transit" or "Delivered".
type ReportTransitStatusRequest struct {
	Status string `json:"status"`
}

// BacklogOrder is one order awaiting assignment.
type BacklogOrder struct {
	OrderID      int64     `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Items        string    `json:"items"`
	Address      string    `json:"address"`
	TotalPrice   float64   `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

// QueuedAssignment is one assignment waiting on an agent.
type QueuedAssignment struct {
	OrderID      int64  `json:"orderId"`
	CustomerName string `json:"customerName"`
	Note         string `json:"note"`
	Status       string `json:"status"`
}

// AgentDelivery is one delivery tracking record of an agent.
// DeliveryTime is null until the order is delivered.
type AgentDelivery struct {
	OrderID               int64      `json:"orderId"`
	Status                string     `json:"status"`
	PickupTime            time.Time  `json:"pickupTime"`
	ScheduledDeliveryTime time.Time  `json:"scheduledDeliveryTime"`
	DeliveryTime          *time.Time `json:"deliveryTime"`
}

// CustomerOrder is one order in a customer's history.
// AssignmentStatus is empty for orders still in the backlog.
type CustomerOrder struct {
	OrderID          int64     `json:"orderId"`
	Items            string    `json:"items"`
	Address          string    `json:"address"`
	TotalPrice       float64   `json:"totalPrice"`
	CreatedAt        time.Time `json:"createdAt"`
	AssignmentStatus string    `json:"assignmentStatus"`
}

// DeliveryKPI is an aggregate over delivered orders. The on-time rate is a
// percentage in the 0-100 range; the core model keeps it as a fraction.
type DeliveryKPI struct {
	Deliveries         int     `json:"deliveries"`
	AvgDeliveryMinutes float64 `json:"avgDeliveryMinutes"`
	OnTimeRatePercent  float64 `json:"onTimeRatePercent"`
}

// MonthlyDeliveryKPI is the KPI for one calendar month, formatted "2006-01".
type MonthlyDeliveryKPI struct {
	Month string `json:"month"`
	DeliveryKPI
}

// DeliveryKPIResponse carries the overall KPI and the monthly breakdown.
type DeliveryKPIResponse struct {
	Overall DeliveryKPI          `json:"overall"`
	Monthly []MonthlyDeliveryKPI `json:"monthly"`
}

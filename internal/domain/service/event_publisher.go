package service

import (
	"context"
)

// Request event types published to the message queue.
const (
	EventRequestCreated   = "request.created"
	EventRequestFulfilled = "request.fulfilled"
)

// RequestEvent represents a request lifecycle event consumed by the
// notifier worker.
type RequestEvent struct {
	TraceID      string `json:"trace_id,omitempty"` // For distributed tracing
	Type         string `json:"type"`               // EventRequestCreated or EventRequestFulfilled
	RequestID    string `json:"request_id"`
	BloodType    string `json:"blood_type"`
	Units        int    `json:"units"`
	Urgency      string `json:"urgency"`
	HospitalName string `json:"hospital_name"`
	Location     string `json:"location,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRequestEvent publishes a request lifecycle event for async processing
	PublishRequestEvent(ctx context.Context, event *RequestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

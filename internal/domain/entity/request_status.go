// Package entity contains the core business objects of the project.
package entity

// RequestStatus represents the lifecycle state of a blood request.
type RequestStatus string

const (
	// StatusPending indicates a request still waiting for enough donor offers.
	StatusPending RequestStatus = "Pending"
	// StatusFulfilled indicates a request whose need is considered met,
	// either automatically by accumulated offers or by manual hospital override.
	StatusFulfilled RequestStatus = "Fulfilled"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusFulfilled:
		return true
	default:
		return false
	}
}

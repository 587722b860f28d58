// Package entity contains the core business objects of the project.
package entity

// Urgency represents the priority classification of a blood request.
type Urgency string

const (
	// UrgencyNormal indicates a routine request.
	UrgencyNormal Urgency = "Normal"
	// UrgencyUrgent indicates an urgent request; donors may offer two units.
	UrgencyUrgent Urgency = "Urgent"
	// UrgencyCritical indicates a critical request. Some creation flows use
	// this variant; the units policy treats it the same as Normal.
	UrgencyCritical Urgency = "Critical"
)

// String returns the string representation of the Urgency.
func (u Urgency) String() string {
	return string(u)
}

// IsValid checks if the Urgency is a valid value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyCritical:
		return true
	default:
		return false
	}
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// BloodRequest is a hospital's ask for a quantity of a specific blood type.
// The document ID is assigned by the persistence layer on creation.
type BloodRequest struct {
	ID           string        // Opaque document identifier.
	BloodType    BloodType     // One of the eight ABO/Rh categories.
	Units        int           // Positive number of units needed.
	Urgency      Urgency       // Priority classification of the request.
	HospitalID   string        // Identity of the hospital that owns the request.
	HospitalName string        // Display name of the hospital, denormalized for listings.
	Location     string        // Free text or a maps URL pointing at the hospital.
	Status       RequestStatus // Pending until fulfilled, automatically or manually.
	CreatedAt    time.Time     // Server-assigned creation timestamp.
}

// IsPending reports whether the request still accepts donor offers.
func (r *BloodRequest) IsPending() bool {
	return r.Status == StatusPending
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// DonorResponse is a donor's commitment to fulfill part of a blood request.
// Responses live in a subcollection under their parent request and at most
// one response exists per (donor, request) pair.
type DonorResponse struct {
	ID           string    // Opaque document identifier.
	RequestID    string    // Parent request this response belongs to.
	DonorID      string    // Identity of the donor who made the offer.
	OfferedAt    time.Time // Server-assigned timestamp of the accepted offer.
	UnitsDonated int       // Units the donor commits to, per the configured units policy.
	Phone        string    // Contact number, optionally filled in later by the donor.
	Availability string    // Free-text availability; required at submission time.
	Donated      bool      // Set by the hospital once the donation actually happened.
}

// DonationRecord is a donor response joined with the fields of its parent
// request, as shown in the donor's donation history.
type DonationRecord struct {
	Response     DonorResponse
	HospitalName string
	BloodType    BloodType
	Urgency      Urgency
	Status       RequestStatus
}

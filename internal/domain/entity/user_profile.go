// Package entity contains the core business objects of the project.
package entity

// UserProfile augments an externally managed identity with role-specific
// data. The document is keyed by the identity provider's opaque user ID.
type UserProfile struct {
	UID           string    // Opaque user ID from the identity provider.
	Name          string    // Display name given at registration.
	Email         string    // Primary contact email.
	Role          Role      // Either donor or hospital.
	BloodType     BloodType // Donor only; may be empty until the profile is completed.
	Phone         string    // Donor only.
	PhoneVerified bool      // Donor only; maintained by the identity provider's OTP flow.
	HospitalName  string    // Hospital only.
	Location      string    // Hospital only; free text or a maps URL.
}

// IsDonor reports whether the profile belongs to a donor account.
func (p *UserProfile) IsDonor() bool {
	return p.Role == RoleDonor
}

// IsHospital reports whether the profile belongs to a hospital account.
func (p *UserProfile) IsHospital() bool {
	return p.Role == RoleHospital
}

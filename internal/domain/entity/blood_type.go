// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// BloodType represents one of the eight ABO/Rh blood categories.
type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// AllBloodTypes lists every valid blood type in display order.
//
//nolint:gochecknoglobals
var AllBloodTypes = []BloodType{
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
	BloodTypeOPos, BloodTypeONeg,
}

// String returns the string representation of the BloodType.
func (b BloodType) String() string {
	return string(b)
}

// IsValid checks if the BloodType is one of the eight known categories.
func (b BloodType) IsValid() bool {
	return slices.Contains(AllBloodTypes, b)
}

// TopicKey returns an FCM-safe topic segment for the blood type.
// FCM topic names may not contain '+' or '-' at arbitrary positions,
// so "A+" becomes "A_POS" and "A-" becomes "A_NEG".
func (b BloodType) TopicKey() string {
	s := string(b)
	if len(s) == 0 {
		return ""
	}

	switch s[len(s)-1] {
	case '+':
		return s[:len(s)-1] + "_POS"
	case '-':
		return s[:len(s)-1] + "_NEG"
	default:
		return s
	}
}

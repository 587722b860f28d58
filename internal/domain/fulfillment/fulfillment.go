// Package fulfillment holds the pure decision logic of the request
// fulfillment model: filtering, aggregation, the units policy, and the
// donor eligibility window. Everything here is side-effect free and
// operates on in-memory snapshots fetched by the caller.
package fulfillment

import (
	"math"
	"time"

	"lifelink/internal/domain/entity"
)

// EligibilityWindow is the minimum interval between a donor's successive
// whole blood donations.
const EligibilityWindow = 90 * 24 * time.Hour

// UnitsPolicy selects how many units a single donor response commits.
type UnitsPolicy string

const (
	// UnitsPolicyUrgency derives the unit count from the request urgency:
	// two units for Urgent requests, one otherwise.
	UnitsPolicyUrgency UnitsPolicy = "urgency"
	// UnitsPolicyDonor accepts a donor-supplied positive unit count.
	UnitsPolicyDonor UnitsPolicy = "donor"
)

// IsValid checks if the UnitsPolicy is a valid value.
func (p UnitsPolicy) IsValid() bool {
	switch p {
	case UnitsPolicyUrgency, UnitsPolicyDonor:
		return true
	default:
		return false
	}
}

// EligibilityBasis selects which timestamps count as a donor's last donation.
type EligibilityBasis string

const (
	// BasisOffered uses the submission time of every offer, matching how the
	// hospital-facing flows have always behaved.
	BasisOffered EligibilityBasis = "offered"
	// BasisConfirmed only counts offers the hospital marked as donated.
	BasisConfirmed EligibilityBasis = "confirmed"
)

// IsValid checks if the EligibilityBasis is a valid value.
func (b EligibilityBasis) IsValid() bool {
	switch b {
	case BasisOffered, BasisConfirmed:
		return true
	default:
		return false
	}
}

// AllowedUnits returns the unit count a response commits under the urgency
// policy: 2 for Urgent requests, 1 for everything else (including Critical).
func AllowedUnits(u entity.Urgency) int {
	if u == entity.UrgencyUrgent {
		return 2
	}

	return 1
}

// ShouldFulfill reports whether the accumulated accepted responses meet the
// requested unit count. Fulfillment is derived from a live count, never from
// a stored counter.
func ShouldFulfill(unitsNeeded, responseCount int) bool {
	return responseCount >= unitsNeeded
}

// RequestFilter is a conjunctive filter over blood requests. A zero-value
// field means "any".
type RequestFilter struct {
	Urgency   entity.Urgency
	Status    entity.RequestStatus
	BloodType entity.BloodType
}

// Match reports whether the request passes every supplied filter field.
func (f RequestFilter) Match(req *entity.BloodRequest) bool {
	if f.Urgency != "" && req.Urgency != f.Urgency {
		return false
	}
	if f.Status != "" && req.Status != f.Status {
		return false
	}
	if f.BloodType != "" && req.BloodType != f.BloodType {
		return false
	}

	return true
}

// FilterRequests returns the requests passing the filter, preserving the
// input order. An empty filter returns the input unchanged.
func FilterRequests(requests []*entity.BloodRequest, filter RequestFilter) []*entity.BloodRequest {
	filtered := make([]*entity.BloodRequest, 0, len(requests))
	for _, req := range requests {
		if filter.Match(req) {
			filtered = append(filtered, req)
		}
	}

	return filtered
}

// Summary is the hospital-facing aggregate over a set of requests.
type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Fulfilled int `json:"fulfilled"`
}

// Summarize counts requests by status. Anything not Fulfilled counts as
// pending, so Pending+Fulfilled always equals Total.
func Summarize(requests []*entity.BloodRequest) Summary {
	summary := Summary{Total: len(requests)}
	for _, req := range requests {
		if req.Status == entity.StatusFulfilled {
			summary.Fulfilled++
		} else {
			summary.Pending++
		}
	}

	return summary
}

// AdminStatistics is the admin-facing aggregate over users and requests.
// Requested and fulfilled units are tracked separately so callers can choose
// which to display.
type AdminStatistics struct {
	DonorCount                int                      `json:"donor_count"`
	HospitalCount             int                      `json:"hospital_count"`
	UnitsRequestedByBloodType map[entity.BloodType]int `json:"units_requested_by_blood_type"`
	UnitsFulfilledByBloodType map[entity.BloodType]int `json:"units_fulfilled_by_blood_type"`
	FulfillmentRatePercent    int                      `json:"fulfillment_rate_percent"`
}

// ComputeAdminStatistics partitions users by role and sums requested units
// per blood type. The fulfillment rate is rounded to the nearest percent and
// zero when there are no requests.
func ComputeAdminStatistics(users []*entity.UserProfile, requests []*entity.BloodRequest) AdminStatistics {
	stats := AdminStatistics{
		UnitsRequestedByBloodType: make(map[entity.BloodType]int),
		UnitsFulfilledByBloodType: make(map[entity.BloodType]int),
	}

	for _, user := range users {
		switch user.Role {
		case entity.RoleDonor:
			stats.DonorCount++
		case entity.RoleHospital:
			stats.HospitalCount++
		}
	}

	fulfilled := 0
	for _, req := range requests {
		stats.UnitsRequestedByBloodType[req.BloodType] += req.Units
		if req.Status == entity.StatusFulfilled {
			fulfilled++
			stats.UnitsFulfilledByBloodType[req.BloodType] += req.Units
		}
	}

	if len(requests) > 0 {
		stats.FulfillmentRatePercent = int(math.Round(float64(fulfilled) / float64(len(requests)) * 100))
	}

	return stats
}

// LastDonation returns the most recent donation timestamp across the donor's
// responses according to the basis, or nil when none qualify.
func LastDonation(responses []*entity.DonorResponse, basis EligibilityBasis) *time.Time {
	var last *time.Time
	for _, resp := range responses {
		if basis == BasisConfirmed && !resp.Donated {
			continue
		}
		if resp.OfferedAt.IsZero() {
			continue
		}
		if last == nil || resp.OfferedAt.After(*last) {
			t := resp.OfferedAt
			last = &t
		}
	}

	return last
}

// IsEligible reports whether a donor may donate again: donors with no prior
// donation are always eligible, otherwise at least the full eligibility
// window must have elapsed.
func IsEligible(lastDonation *time.Time, now time.Time) bool {
	if lastDonation == nil {
		return true
	}

	return now.Sub(*lastDonation) >= EligibilityWindow
}

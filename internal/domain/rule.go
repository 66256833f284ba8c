package domain

import (
	"github.com/simplyseat/reservation-service/pkg/types"
)

// RuleScope identifies what an availability rule applies to.
type RuleScope string

const (
	// RuleScopeVenue means the rule describes the venue's opening hours.
	RuleScopeVenue RuleScope = "venue"
	// RuleScopeStaff means the rule describes one staff member's working hours.
	RuleScopeStaff RuleScope = "staff"
)

// AvailabilityRule is a recurring weekly open-hours interval scoped to a venue
// or to a staff member — exactly one of the two. The storage layer resolves
// the nullable columns into Scope once; nothing downstream re-infers it.
//
// Multiple rules per (scope, day) are allowed, e.g. split shifts, and each is
// expanded into slots independently. EndTime numerically at or before
// StartTime means the interval crosses midnight (a bar open 18:00-02:00).
type AvailabilityRule struct {
	ID            int64
	Scope         RuleScope
	VenueID       int64  // set for both scopes; owner venue
	StaffMemberID *int64 // set only when Scope == RuleScopeStaff
	DayOfWeek     int    // 0 = Sunday .. 6 = Saturday
	StartTime     types.TimeString
	EndTime       types.TimeString
}

// IsOvernight reports whether the rule's interval wraps past midnight.
func (r *AvailabilityRule) IsOvernight() bool {
	return !r.EndTime.IsAfter(r.StartTime)
}

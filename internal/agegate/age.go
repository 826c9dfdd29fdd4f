// Package agegate implements the age-validation core behind the
// age-confirmation screen: calendar-age computation, the validity check
// against a minimum-age requirement, and the submission gate that decides
// whether a submit action proceeds or is rejected.
package agegate

import "time"

// Result is the derived validation state. It is never stored; it is
// recomputed from scratch whenever the birth date or requirement changes.
type Result struct {
	// AgeYears is the whole calendar years elapsed since the birth date.
	// Zero when no birth date is set.
	AgeYears int

	// Valid reports whether AgeYears meets the minimum-age requirement.
	Valid bool
}

// AgeYears returns the number of whole calendar years elapsed from birth to
// now. The zero time means "no date selected" and yields 0 rather than an
// error. A birth date in the future also yields 0, consistent with the
// unset default.
//
// The count uses calendar truncation, not day-count division: the year
// difference is decremented while the birthday has not yet occurred in
// now's year. A Feb 29 birth date counts its birthday on Mar 1 in non-leap
// years, matching Go's time.Date normalization.
func AgeYears(birth, now time.Time) int {
	if birth.IsZero() {
		return 0
	}

	years := now.Year() - birth.Year()

	// Birthday pending this year does not count.
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}

	if years < 0 {
		return 0
	}
	return years
}

// IsValid reports whether an age meets the minimum-age requirement.
func IsValid(ageYears, requirement int) bool {
	return ageYears >= requirement
}

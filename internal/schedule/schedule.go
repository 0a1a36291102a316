// Package schedule implements the worker availability model: validation of
// weekly timetables, overlap detection for non-availability windows, and the
// effective-availability resolver for a concrete calendar date.
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
)

// clockPattern matches zero-padded 24-hour wall-clock times, "00:00" through "23:59"
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClockTime reports whether s is a zero-padded 24-hour "HH:MM" string
func IsValidClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

// ClockOf reduces an absolute timestamp to its wall-clock "HH:MM" representation
func ClockOf(t time.Time) string {
	return t.Format("15:04")
}

// SameDate reports whether two timestamps fall on the same calendar date
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Overlaps applies the half-open interval overlap test to two wall-clock
// intervals. Zero-padded "HH:MM" strings compare correctly lexically.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// OverlapsAt applies the half-open interval overlap test to two absolute
// timestamp intervals
func OverlapsAt(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ValidateInterval checks one timetable interval: both bounds must be valid
// wall-clock strings and start must precede end. The day and index are used
// to name the failing field.
func ValidateInterval(day models.Weekday, index int, interval models.TimeInterval) error {
	field := fmt.Sprintf("%s[%d]", day, index)
	if !IsValidClockTime(interval.Start) {
		return apperrors.NewValidationError(field+".start", "must be a zero-padded 24-hour HH:MM time")
	}
	if !IsValidClockTime(interval.End) {
		return apperrors.NewValidationError(field+".end", "must be a zero-padded 24-hour HH:MM time")
	}
	if interval.Start >= interval.End {
		return apperrors.NewValidationError(field, "start must precede end")
	}
	return nil
}

// ValidateTimetable checks every present weekday key and every interval of a
// weekly timetable. Missing weekdays are allowed and treated as empty.
func ValidateTimetable(timetable models.WeeklyTimetable) error {
	for day, intervals := range timetable {
		if !day.IsValid() {
			return apperrors.NewValidationError(string(day), "unknown weekday")
		}
		for i, interval := range intervals {
			if err := ValidateInterval(day, i, interval); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateExceptionWindow checks a new non-availability window against the
// chronological rules: end strictly after start, start not in the past
func ValidateExceptionWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return apperrors.NewValidationError("end_date_time", "must be after start_date_time")
	}
	if start.Before(now) {
		return apperrors.NewValidationError("start_date_time", "must not be in the past")
	}
	return nil
}

// Covers reports whether any interval fully contains the window [start, end)
func Covers(intervals []models.TimeInterval, start, end string) bool {
	for _, interval := range intervals {
		if interval.Start <= start && interval.End >= end {
			return true
		}
	}
	return false
}

// OverlapsAny reports whether the window [start, end) overlaps any existing
// non-availability slot
func OverlapsAny(slots models.NonAvailabilitySlots, start, end time.Time) bool {
	for _, slot := range slots {
		if OverlapsAt(start, end, slot.StartDateTime, slot.EndDateTime) {
			return true
		}
	}
	return false
}

// Normalize returns a copy of the timetable with all seven weekday keys
// present, preserving the stored interval order within each day
func Normalize(timetable models.WeeklyTimetable) models.WeeklyTimetable {
	normalized := models.NewWeeklyTimetable()
	for day, intervals := range timetable {
		if !day.IsValid() {
			continue
		}
		normalized[day] = append([]models.TimeInterval{}, intervals...)
	}
	return normalized
}

// SortSlots orders non-availability slots ascending by start timestamp
func SortSlots(slots models.NonAvailabilitySlots) models.NonAvailabilitySlots {
	sorted := append(models.NonAvailabilitySlots{}, slots...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDateTime.Before(sorted[j].StartDateTime)
	})
	return sorted
}

// DayResolution is the effective availability of one worker on one calendar date
type DayResolution struct {
	Weekday    models.Weekday               `json:"weekday"`
	Regular    []models.TimeInterval        `json:"regular"`
	Exceptions []models.NonAvailabilitySlot `json:"exceptions"`
	Effective  []models.TimeInterval        `json:"effective"`
}

// Resolve computes the effective availability for one calendar date. It takes
// the weekly intervals for the date's weekday, finds the non-availability
// slots whose start falls on that date, collapses each slot to its wall-clock
// span, and removes every weekly interval that overlaps any collapsed span.
//
// Slot timestamps carry their own zone offsets, so both bounds are converted
// into the queried date's time zone before the calendar-date and wall-clock
// comparisons.
//
// Overlapping intervals are removed whole, never split into remainders. A slot
// spanning midnight into the next day is compared only by its start and end
// wall-clock times against the queried date, not as a true elapsed-time
// subtraction.
func Resolve(timetable models.WeeklyTimetable, slots models.NonAvailabilitySlots, date time.Time) DayResolution {
	weekday := models.WeekdayOf(date)
	loc := date.Location()

	regular := append([]models.TimeInterval{}, timetable[weekday]...)

	exceptions := []models.NonAvailabilitySlot{}
	for _, slot := range slots {
		slot.StartDateTime = slot.StartDateTime.In(loc)
		slot.EndDateTime = slot.EndDateTime.In(loc)
		if SameDate(slot.StartDateTime, date) {
			exceptions = append(exceptions, slot)
		}
	}

	effective := []models.TimeInterval{}
	for _, interval := range regular {
		blocked := false
		for _, slot := range exceptions {
			if Overlaps(interval.Start, interval.End, ClockOf(slot.StartDateTime), ClockOf(slot.EndDateTime)) {
				blocked = true
				break
			}
		}
		if !blocked {
			effective = append(effective, interval)
		}
	}

	return DayResolution{
		Weekday:    weekday,
		Regular:    regular,
		Exceptions: exceptions,
		Effective:  effective,
	}
}

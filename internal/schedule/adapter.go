package schedule

import (
	"fmt"
	"strings"
	"time"

	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
)

// FlatWeeklySlot is the flattened editing form of one weekly timetable
// interval. The ID is recomputed from position on every call and is never
// persisted, so it must not be used as a stable cross-call key.
type FlatWeeklySlot struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// FlatCustomSlot is the flattened form of one non-availability slot. The ID
// is the slot's real persisted identifier.
type FlatCustomSlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason,omitempty"`
}

// ToFlatWeeklySlots flattens a weekly timetable into a slot list, iterating
// weekdays Monday through Sunday and preserving the stored interval order
// within each day
func ToFlatWeeklySlots(timetable models.WeeklyTimetable) []FlatWeeklySlot {
	flat := []FlatWeeklySlot{}
	for _, day := range models.Weekdays {
		for i, interval := range timetable[day] {
			flat = append(flat, FlatWeeklySlot{
				ID:        fmt.Sprintf("%s-%d", strings.ToLower(string(day)), i),
				Day:       string(day),
				StartTime: interval.Start,
				EndTime:   interval.End,
			})
		}
	}
	return flat
}

// FromFlatWeeklySlots groups flat slots by day into a weekly timetable. All
// seven weekday keys are always present; days absent from the input become
// empty lists. Slots naming an unknown day are dropped.
func FromFlatWeeklySlots(flat []FlatWeeklySlot) models.WeeklyTimetable {
	timetable := models.NewWeeklyTimetable()
	for _, slot := range flat {
		day := models.Weekday(slot.Day)
		if !day.IsValid() {
			continue
		}
		timetable[day] = append(timetable[day], models.TimeInterval{
			Start: slot.StartTime,
			End:   slot.EndTime,
		})
	}
	return timetable
}

// ToFlatCustomSlots flattens non-availability slots, reducing each absolute
// window to its start date and wall-clock bounds
func ToFlatCustomSlots(slots models.NonAvailabilitySlots) []FlatCustomSlot {
	flat := []FlatCustomSlot{}
	for _, slot := range slots {
		flat = append(flat, FlatCustomSlot{
			ID:        slot.ID.String(),
			Date:      slot.StartDateTime.Format("2006-01-02"),
			StartTime: ClockOf(slot.StartDateTime),
			EndTime:   ClockOf(slot.EndDateTime),
			Reason:    slot.Reason,
		})
	}
	return flat
}

// FromFlatCustomSlot combines a flat slot's date and wall-clock bounds into
// two absolute timestamps in the process-local time zone
func FromFlatCustomSlot(slot FlatCustomSlot) (start, end time.Time, reason string, err error) {
	start, err = time.ParseInLocation("2006-01-02 15:04", slot.Date+" "+slot.StartTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, "", apperrors.NewValidationError("start_time", "must form a valid date-time with date")
	}
	end, err = time.ParseInLocation("2006-01-02 15:04", slot.Date+" "+slot.EndTime, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, "", apperrors.NewValidationError("end_time", "must form a valid date-time with date")
	}
	return start, end, slot.Reason, nil
}

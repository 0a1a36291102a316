package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Weekday is the canonical English weekday name used as the timetable key
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists all weekday keys in stable rendering order (week starts Monday)
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid checks if the Weekday is one of the seven canonical names
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// WeekdayOf returns the weekday key for a calendar date
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday().String())
}

// TimeInterval is a wall-clock interval with zero-padded 24-hour "HH:MM" bounds
type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyTimetable maps weekday names to the worker's recurring available intervals.
// It is stored as a single jsonb column so a replace is one atomic row update.
type WeeklyTimetable map[Weekday][]TimeInterval

// NewWeeklyTimetable returns a timetable with all seven weekday keys present
// and empty interval lists
func NewWeeklyTimetable() WeeklyTimetable {
	tt := make(WeeklyTimetable, len(Weekdays))
	for _, day := range Weekdays {
		tt[day] = []TimeInterval{}
	}
	return tt
}

// Value implements driver.Valuer for jsonb storage
func (tt WeeklyTimetable) Value() (driver.Value, error) {
	if tt == nil {
		tt = NewWeeklyTimetable()
	}
	return json.Marshal(tt)
}

// Scan implements sql.Scanner for jsonb storage
func (tt *WeeklyTimetable) Scan(value interface{}) error {
	if value == nil {
		*tt = NewWeeklyTimetable()
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		if s, sok := value.(string); sok {
			data = []byte(s)
		} else {
			return fmt.Errorf("unsupported type %T for WeeklyTimetable", value)
		}
	}
	return json.Unmarshal(data, tt)
}

// NonAvailabilitySlot is a one-off absolute-dated interval during which the
// worker is unavailable regardless of the weekly timetable
type NonAvailabilitySlot struct {
	ID            uuid.UUID `json:"id"`
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	Reason        string    `json:"reason,omitempty"`
}

// NonAvailabilitySlots is the worker-owned exception list, stored as a single
// jsonb column so append and remove are each one atomic row update
type NonAvailabilitySlots []NonAvailabilitySlot

// Value implements driver.Valuer for jsonb storage
func (s NonAvailabilitySlots) Value() (driver.Value, error) {
	if s == nil {
		s = NonAvailabilitySlots{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for jsonb storage
func (s *NonAvailabilitySlots) Scan(value interface{}) error {
	if value == nil {
		*s = NonAvailabilitySlots{}
		return nil
	}
	data, ok := value.([]byte)
	if !ok {
		if str, sok := value.(string); sok {
			data = []byte(str)
		} else {
			return fmt.Errorf("unsupported type %T for NonAvailabilitySlots", value)
		}
	}
	return json.Unmarshal(data, s)
}

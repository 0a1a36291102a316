package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workjunction-backend/internal/database/models"
	apperrors "workjunction-backend/internal/errors"
)

// monday is a fixed reference Monday used by resolver tests
var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func TestIsValidClockTime(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"12:00", true},
		{"24:00", false},
		{"09:60", false},
		{"9:00", false},
		{"09:5", false},
		{"0900", false},
		{"", false},
		{"ab:cd", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidClockTime(tt.input))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     models.TimeInterval
		expected bool
	}{
		{"disjoint", models.TimeInterval{Start: "09:00", End: "10:00"}, models.TimeInterval{Start: "11:00", End: "12:00"}, false},
		{"touching endpoints do not overlap", models.TimeInterval{Start: "09:00", End: "12:00"}, models.TimeInterval{Start: "12:00", End: "13:00"}, false},
		{"partial overlap", models.TimeInterval{Start: "09:00", End: "12:00"}, models.TimeInterval{Start: "11:00", End: "13:00"}, true},
		{"containment", models.TimeInterval{Start: "09:00", End: "17:00"}, models.TimeInterval{Start: "12:00", End: "13:00"}, true},
		{"identical", models.TimeInterval{Start: "09:00", End: "10:00"}, models.TimeInterval{Start: "09:00", End: "10:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.a.Start, tt.a.End, tt.b.Start, tt.b.End))
			assert.Equal(t, tt.expected, Overlaps(tt.b.Start, tt.b.End, tt.a.Start, tt.a.End))
		})
	}
}

func TestValidateTimetable(t *testing.T) {
	tests := []struct {
		name      string
		timetable models.WeeklyTimetable
		wantErr   bool
	}{
		{
			name:      "empty timetable is valid",
			timetable: models.WeeklyTimetable{},
		},
		{
			name: "missing days are allowed",
			timetable: models.WeeklyTimetable{
				models.Monday: {{Start: "09:00", End: "17:00"}},
			},
		},
		{
			name: "unknown weekday",
			timetable: models.WeeklyTimetable{
				"Funday": {{Start: "09:00", End: "17:00"}},
			},
			wantErr: true,
		},
		{
			name: "hour out of range",
			timetable: models.WeeklyTimetable{
				models.Tuesday: {{Start: "24:00", End: "25:00"}},
			},
			wantErr: true,
		},
		{
			name: "minute out of range",
			timetable: models.WeeklyTimetable{
				models.Tuesday: {{Start: "09:60", End: "10:00"}},
			},
			wantErr: true,
		},
		{
			name: "not zero padded",
			timetable: models.WeeklyTimetable{
				models.Wednesday: {{Start: "9:00", End: "10:00"}},
			},
			wantErr: true,
		},
		{
			name: "start equals end",
			timetable: models.WeeklyTimetable{
				models.Friday: {{Start: "10:00", End: "10:00"}},
			},
			wantErr: true,
		},
		{
			name: "start after end",
			timetable: models.WeeklyTimetable{
				models.Friday: {{Start: "17:00", End: "09:00"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimetable(tt.timetable)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTimetableNamesFailingField(t *testing.T) {
	err := ValidateTimetable(models.WeeklyTimetable{
		models.Monday: {{Start: "09:00", End: "17:00"}, {Start: "banana", End: "18:00"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Monday[1].start")
}

func TestValidateExceptionWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		wantErr    bool
	}{
		{"valid future window", now.Add(time.Hour), now.Add(2 * time.Hour), false},
		{"end equals start", now.Add(time.Hour), now.Add(time.Hour), true},
		{"end before start", now.Add(2 * time.Hour), now.Add(time.Hour), true},
		{"start in the past", now.Add(-time.Minute), now.Add(time.Hour), true},
		{"start exactly now", now, now.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExceptionWindow(tt.start, tt.end, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOverlapsAny(t *testing.T) {
	existing := models.NonAvailabilitySlots{
		{ID: uuid.New(), StartDateTime: monday.Add(10 * time.Hour), EndDateTime: monday.Add(12 * time.Hour)},
		{ID: uuid.New(), StartDateTime: monday.Add(15 * time.Hour), EndDateTime: monday.Add(16 * time.Hour)},
	}

	assert.True(t, OverlapsAny(existing, monday.Add(11*time.Hour), monday.Add(13*time.Hour)))
	assert.True(t, OverlapsAny(existing, monday.Add(9*time.Hour), monday.Add(17*time.Hour)))
	assert.False(t, OverlapsAny(existing, monday.Add(12*time.Hour), monday.Add(15*time.Hour)))
	assert.False(t, OverlapsAny(existing, monday.Add(18*time.Hour), monday.Add(19*time.Hour)))
	assert.False(t, OverlapsAny(models.NonAvailabilitySlots{}, monday, monday.Add(time.Hour)))
}

func TestNormalizeMaterializesAllWeekdays(t *testing.T) {
	normalized := Normalize(models.WeeklyTimetable{
		models.Monday: {{Start: "09:00", End: "17:00"}},
	})

	assert.Len(t, normalized, 7)
	for _, day := range models.Weekdays {
		assert.NotNil(t, normalized[day])
	}
	assert.Equal(t, []models.TimeInterval{{Start: "09:00", End: "17:00"}}, normalized[models.Monday])
	assert.Empty(t, normalized[models.Sunday])
}

func TestSortSlots(t *testing.T) {
	a := models.NonAvailabilitySlot{ID: uuid.New(), StartDateTime: monday.Add(15 * time.Hour), EndDateTime: monday.Add(16 * time.Hour)}
	b := models.NonAvailabilitySlot{ID: uuid.New(), StartDateTime: monday.Add(9 * time.Hour), EndDateTime: monday.Add(10 * time.Hour)}

	sorted := SortSlots(models.NonAvailabilitySlots{a, b})
	require.Len(t, sorted, 2)
	assert.Equal(t, b.ID, sorted[0].ID)
	assert.Equal(t, a.ID, sorted[1].ID)
}

func TestResolveWithoutExceptions(t *testing.T) {
	timetable := models.WeeklyTimetable{
		models.Monday: {{Start: "09:00", End: "12:00"}, {Start: "13:00", End: "17:00"}},
	}

	resolution := Resolve(timetable, nil, monday)

	assert.Equal(t, models.Monday, resolution.Weekday)
	assert.Equal(t, timetable[models.Monday], resolution.Regular)
	assert.Empty(t, resolution.Exceptions)
	assert.Equal(t, timetable[models.Monday], resolution.Effective)
}

func TestResolveRemovesWholeOverlappingInterval(t *testing.T) {
	timetable := models.WeeklyTimetable{
		models.Monday: {{Start: "09:00", End: "17:00"}},
	}
	slots := models.NonAvailabilitySlots{
		{ID: uuid.New(), StartDateTime: monday.Add(12 * time.Hour), EndDateTime: monday.Add(13 * time.Hour)},
	}

	resolution := Resolve(timetable, slots, monday)

	assert.Equal(t, []models.TimeInterval{{Start: "09:00", End: "17:00"}}, resolution.Regular)
	require.Len(t, resolution.Exceptions, 1)
	assert.Empty(t, resolution.Effective)
}

func TestResolveKeepsDisjointIntervals(t *testing.T) {
	timetable := models.WeeklyTimetable{
		models.Monday: {{Start: "08:00", End: "10:00"}, {Start: "12:00", End: "14:00"}, {Start: "16:00", End: "18:00"}},
	}
	slots := models.NonAvailabilitySlots{
		{ID: uuid.New(), StartDateTime: monday.Add(12 * time.Hour), EndDateTime: monday.Add(13 * time.Hour)},
	}

	resolution := Resolve(timetable, slots, monday)

	assert.Equal(t, []models.TimeInterval{{Start: "08:00", End: "10:00"}, {Start: "16:00", End: "18:00"}}, resolution.Effective)
}

func TestResolveIgnoresExceptionsOnOtherDates(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	timetable := models.WeeklyTimetable{
		models.Monday: {{Start: "09:00", End: "17:00"}},
	}
	slots := models.NonAvailabilitySlots{
		{ID: uuid.New(), StartDateTime: tuesday.Add(12 * time.Hour), EndDateTime: tuesday.Add(13 * time.Hour)},
	}

	resolution := Resolve(timetable, slots, monday)

	assert.Empty(t, resolution.Exceptions)
	assert.Equal(t, resolution.Regular, resolution.Effective)
}

func TestResolveConvertsZonedTimestampsToQueryZone(t *testing.T) {
	// A client may submit the window with any zone offset; the resolver must
	// compare it in the queried date's zone. Monday 19:00-20:00 at +10:00 is
	// the same pair of instants as Monday 09:00-10:00 UTC.
	offset := time.FixedZone("UTC+10", 10*60*60)
	timetable := models.WeeklyTimetable{
		models.Monday: {{Start: "09:00", End: "10:00"}},
	}
	slots := models.NonAvailabilitySlots{
		{
			ID:            uuid.New(),
			StartDateTime: time.Date(2026, 8, 31, 19, 0, 0, 0, offset),
			EndDateTime:   time.Date(2026, 8, 31, 20, 0, 0, 0, offset),
		},
	}

	resolution := Resolve(timetable, slots, monday)

	require.Len(t, resolution.Exceptions, 1)
	assert.Equal(t, "09:00", ClockOf(resolution.Exceptions[0].StartDateTime))
	assert.Empty(t, resolution.Effective)
}

func TestResolveConvertsZonedTimestampsAcrossDateBoundary(t *testing.T) {
	// Sunday 23:30 at -02:00 is Monday 01:30 UTC; queried in UTC it must land
	// on Monday, not Sunday.
	offset := time.FixedZone("UTC-2", -2*60*60)
	timetable := models.WeeklyTimetable{
		models.Monday: {{Start: "01:00", End: "03:00"}},
	}
	slots := models.NonAvailabilitySlots{
		{
			ID:            uuid.New(),
			StartDateTime: time.Date(2026, 8, 30, 23, 30, 0, 0, offset),
			EndDateTime:   time.Date(2026, 8, 31, 0, 30, 0, 0, offset),
		},
	}

	resolution := Resolve(timetable, slots, monday)

	require.Len(t, resolution.Exceptions, 1)
	assert.Empty(t, resolution.Effective)
}

func TestResolveCollapsesMidnightSpanToStartDate(t *testing.T) {
	// A slot starting Monday 22:00 and ending Tuesday 02:00 is attributed to
	// Monday only, compared by wall-clock bounds 22:00 and 02:00.
	timetable := models.WeeklyTimetable{
		models.Monday:  {{Start: "09:00", End: "17:00"}},
		models.Tuesday: {{Start: "00:00", End: "03:00"}},
	}
	slots := models.NonAvailabilitySlots{
		{ID: uuid.New(), StartDateTime: monday.Add(22 * time.Hour), EndDateTime: monday.Add(26 * time.Hour)},
	}

	// The inverted wall-clock span 22:00-02:00 cannot overlap 09:00-17:00,
	// so Monday's working hours survive even though the slot is attributed
	// to Monday.
	mondayRes := Resolve(timetable, slots, monday)
	require.Len(t, mondayRes.Exceptions, 1)
	assert.Equal(t, mondayRes.Regular, mondayRes.Effective)

	tuesdayRes := Resolve(timetable, slots, monday.AddDate(0, 0, 1))
	assert.Empty(t, tuesdayRes.Exceptions)
	assert.Equal(t, tuesdayRes.Regular, tuesdayRes.Effective)
}

func TestResolveEmptyDay(t *testing.T) {
	resolution := Resolve(models.WeeklyTimetable{}, nil, monday)

	assert.Equal(t, models.Monday, resolution.Weekday)
	assert.Empty(t, resolution.Regular)
	assert.Empty(t, resolution.Effective)
}

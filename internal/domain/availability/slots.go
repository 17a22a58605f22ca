package availability

import (
	"slices"
	"time"

	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

const noon = 12 * 60

// Slot is a derived bookable start time. It is never persisted.
type Slot struct {
	DateTime    time.Time `json:"dateTime"`
	Time        string    `json:"time"`
	DisplayTime string    `json:"displayTime"`
	Period      Period    `json:"period"`
}

type BusinessHoursView struct {
	Open       string  `json:"open"`
	Close      string  `json:"close"`
	BreakStart *string `json:"breakStart"`
	BreakEnd   *string `json:"breakEnd"`
}

// Result is the availability of one calendar date.
type Result struct {
	WorkingDay     bool               `json:"workingDay"`
	BusinessHours  *BusinessHoursView `json:"businessHours"`
	AvailableSlots []Slot             `json:"availableSlots"`
	TotalSlots     int                `json:"totalSlots"`
	AvailableCount int                `json:"availableCount"`
	Message        string             `json:"message,omitempty"`
}

const (
	MessagePastDate      = "past_date"
	MessageNonWorkingDay = "non_working_day"
	MessageFullyBooked   = "fully_booked"
)

func PastDateResult() Result {
	return Result{AvailableSlots: []Slot{}, Message: MessagePastDate}
}

func NonWorkingDayResult() Result {
	return Result{AvailableSlots: []Slot{}, Message: MessageNonWorkingDay}
}

// Candidates steps from open time by the slot increment and keeps every
// start whose [T, T+duration) stays before close and clear of the break.
// date only contributes its calendar date and location.
func Candidates(date time.Time, w Window, durationMinutes int) []time.Time {
	var out []time.Time
	for t := w.Open; t < w.Close; t += w.SlotDuration {
		if !w.Contains(t, durationMinutes) {
			continue
		}
		out = append(out, time.Date(date.Year(), date.Month(), date.Day(), t/60, t%60, 0, 0, date.Location()))
	}
	return out
}

// ConflictFor returns which commitment, if any, blocks [start, start+duration).
// Appointments are checked by interval overlap; confirmed requests only by
// exact start time because they carry no duration.
func ConflictFor(start time.Time, durationMinutes int, appointments []models.Appointment, requestTimes []string) ConflictType {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	for _, ap := range appointments {
		if Overlaps(start, end, ap.StartsAt, ap.EndsAt()) {
			return ConflictAppointment
		}
	}
	if slices.Contains(requestTimes, start.Format(timezone.TimeLayout)) {
		return ConflictRequest
	}
	return ConflictNone
}

func PeriodFor(start time.Time, w Window) Period {
	split := noon
	if w.HasBreak() {
		split = w.BreakStart
	}
	if start.Hour()*60+start.Minute() < split {
		return PeriodMorning
	}
	return PeriodAfternoon
}

func NewSlot(start time.Time, w Window) Slot {
	return Slot{
		DateTime:    start,
		Time:        start.Format(timezone.TimeLayout),
		DisplayTime: start.Format("3:04 PM"),
		Period:      PeriodFor(start, w),
	}
}

// Day computes the availability of a working date. now must be in the same
// location as date; on the current date only starts strictly after now remain.
func Day(date, now time.Time, w Window, durationMinutes int, appointments []models.Appointment, requestTimes []string) Result {
	candidates := Candidates(date, w, durationMinutes)
	today := timezone.SameDate(date, now)

	slots := make([]Slot, 0, len(candidates))
	for _, start := range candidates {
		if today && !start.After(now) {
			continue
		}
		if ConflictFor(start, durationMinutes, appointments, requestTimes) != ConflictNone {
			continue
		}
		slots = append(slots, NewSlot(start, w))
	}

	res := Result{
		WorkingDay:     true,
		BusinessHours:  w.View(),
		AvailableSlots: slots,
		TotalSlots:     len(candidates),
		AvailableCount: len(slots),
	}
	if len(slots) == 0 {
		res.Message = MessageFullyBooked
	}
	return res
}

package availability

import (
	"fmt"

	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/timezone"
)

const DefaultSlotDuration = 30

// Window is the operating window of one calendar date, in minutes after midnight.
type Window struct {
	Open         int
	Close        int
	BreakStart   int
	BreakEnd     int
	SlotDuration int
	hasBreak     bool
}

func NewWindow(open, close string, breakStart, breakEnd *string, slotDuration int) (Window, error) {
	w := Window{SlotDuration: slotDuration}
	if w.SlotDuration <= 0 {
		w.SlotDuration = DefaultSlotDuration
	}

	var err error
	if w.Open, err = timezone.ParseClock(open); err != nil {
		return Window{}, fmt.Errorf("open time: %w", err)
	}
	if w.Close, err = timezone.ParseClock(close); err != nil {
		return Window{}, fmt.Errorf("close time: %w", err)
	}
	if w.Open >= w.Close {
		return Window{}, fmt.Errorf("open time %s is not before close time %s", open, close)
	}

	if breakStart != nil && breakEnd != nil && *breakStart != "" && *breakEnd != "" {
		if w.BreakStart, err = timezone.ParseClock(*breakStart); err != nil {
			return Window{}, fmt.Errorf("break start: %w", err)
		}
		if w.BreakEnd, err = timezone.ParseClock(*breakEnd); err != nil {
			return Window{}, fmt.Errorf("break end: %w", err)
		}
		if w.BreakStart >= w.BreakEnd {
			return Window{}, fmt.Errorf("break start %s is not before break end %s", *breakStart, *breakEnd)
		}
		w.hasBreak = true
	}

	return w, nil
}

func (w Window) HasBreak() bool {
	return w.hasBreak
}

// Contains reports whether [start, start+duration) fits inside the window
// without touching the break.
func (w Window) Contains(start, duration int) bool {
	end := start + duration
	if start < w.Open || end > w.Close {
		return false
	}
	if w.hasBreak && overlapsMinutes(start, end, w.BreakStart, w.BreakEnd) {
		return false
	}
	return true
}

// View echoes the window back in "HH:MM" form.
func (w Window) View() *BusinessHoursView {
	v := &BusinessHoursView{
		Open:  formatClock(w.Open),
		Close: formatClock(w.Close),
	}
	if w.hasBreak {
		bs, be := formatClock(w.BreakStart), formatClock(w.BreakEnd)
		v.BreakStart, v.BreakEnd = &bs, &be
	}
	return v
}

// ResolveWindow picks the date override when present, else the weekly rule.
// A nil window means the location does not work that day.
func ResolveWindow(override *models.BusinessHoursOverride, weekly *models.BusinessHours) (*Window, error) {
	switch {
	case override != nil:
		if !override.IsOpen {
			return nil, nil
		}
		return resolveOpen(override.OpenTime, override.CloseTime, override.BreakStart, override.BreakEnd, override.SlotDuration)
	case weekly != nil:
		if !weekly.IsOpen {
			return nil, nil
		}
		return resolveOpen(weekly.OpenTime, weekly.CloseTime, weekly.BreakStart, weekly.BreakEnd, weekly.SlotDuration)
	default:
		return nil, nil
	}
}

func resolveOpen(open, close, breakStart, breakEnd *string, slotDuration int) (*Window, error) {
	if open == nil || close == nil {
		return nil, fmt.Errorf("open day without open/close time")
	}
	w, err := NewWindow(*open, *close, breakStart, breakEnd, slotDuration)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func formatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

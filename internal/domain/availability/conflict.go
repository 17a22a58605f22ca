package availability

import "github.com/Ealanisln/vetify-api/internal/httperr"

type ConflictType string

const (
	ConflictNone        ConflictType = ""
	ConflictAppointment ConflictType = "appointment"
	ConflictRequest     ConflictType = "request"
)

// Decision is the outcome of checking one candidate slot.
type Decision struct {
	Available    bool         `json:"available"`
	ConflictType ConflictType `json:"conflictType,omitempty"`
	Reason       string       `json:"reason,omitempty"`
}

func DecisionFor(ct ConflictType) Decision {
	switch ct {
	case ConflictAppointment:
		return Decision{ConflictType: ct, Reason: "The selected time overlaps an existing appointment."}
	case ConflictRequest:
		return Decision{ConflictType: ct, Reason: "The selected time is already taken by a confirmed booking request."}
	default:
		return Decision{Available: true}
	}
}

// SlotConflict is the rejection returned when a commit finds its slot taken.
func SlotConflict(ct ConflictType) error {
	return httperr.BusinessError{
		Kind:         httperr.KindConflict,
		Code:         "slot_conflict",
		Message:      DecisionFor(ct).Reason,
		ConflictType: string(ct),
	}
}

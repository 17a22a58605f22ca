package appointment

import "github.com/Ealanisln/vetify-api/internal/httperr"

var (
	ErrAppointmentNotFound = httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	ErrRequestNotFound     = httperr.ErrNotFound("request_not_found", "Appointment request not found.")
	ErrPetRequired         = httperr.ErrValidation("pet_required", "A pet is required.")
	ErrInvalidStatus       = httperr.ErrValidation("invalid_status", "Cancellation status must be CANCELLED_CLIENT or CANCELLED_CLINIC.")
	ErrContactRequired     = httperr.ErrValidation("contact_required", "Contact name and phone are required.")
	ErrInvalidEmail        = httperr.ErrValidation("invalid_email", "Contact email is invalid.")
	ErrTimeRequired        = httperr.ErrValidation("time_required", "A time is required to confirm this request.")

	ErrNotOpen           = httperr.ErrConflict("appointment_not_open", "Only scheduled or confirmed appointments can be changed.")
	ErrRequestNotPending = httperr.ErrConflict("request_not_pending", "Only pending requests can be confirmed or rejected.")
)

var ErrTooSoon = httperr.ErrConflict("too_soon", "The selected time is too close to book online.")

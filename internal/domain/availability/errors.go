package availability

import "github.com/Ealanisln/vetify-api/internal/httperr"

var (
	ErrInvalidDate     = httperr.ErrValidation("invalid_date", "Date must be YYYY-MM-DD or an ISO datetime.")
	ErrInvalidTime     = httperr.ErrValidation("invalid_time", "Time must be HH:MM.")
	ErrInvalidDuration = httperr.ErrValidation("invalid_duration", "Duration must be a positive number of minutes.")
	ErrPastDateTime    = httperr.ErrValidation("past_datetime", "The selected date and time is in the past.")
	ErrMissingTenant   = httperr.ErrValidation("missing_tenant", "Tenant identifier is required.")

	ErrTenantNotFound   = httperr.ErrNotFound("tenant_not_found", "Clinic not found.")
	ErrLocationNotFound = httperr.ErrNotFound("location_not_found", "Location not found.")

	ErrBookingDisabled = httperr.ErrForbidden("booking_disabled", "Online booking is disabled for this clinic.")

	ErrOutsideBusinessHours = httperr.ErrConflict("outside_business_hours", "The selected time is outside business hours.")
	ErrNonWorkingDay        = httperr.ErrConflict("non_working_day", "The clinic is closed on the selected date.")
)

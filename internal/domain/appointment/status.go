package appointment

const (
	StatusScheduled       = "SCHEDULED"
	StatusConfirmed       = "CONFIRMED"
	StatusCompleted       = "COMPLETED"
	StatusCancelledClient = "CANCELLED_CLIENT"
	StatusCancelledClinic = "CANCELLED_CLINIC"
	StatusNoShow          = "NO_SHOW"
)

// NonBlockingStatuses free the appointment's time interval.
var NonBlockingStatuses = []string{StatusCancelledClient, StatusCancelledClinic, StatusNoShow}

func BlocksSlot(status string) bool {
	switch status {
	case StatusCancelledClient, StatusCancelledClinic, StatusNoShow:
		return false
	default:
		return true
	}
}

// IsOpen reports whether the appointment can still be rescheduled,
// cancelled or closed out.
func IsOpen(status string) bool {
	return status == StatusScheduled || status == StatusConfirmed
}

func IsCancellation(status string) bool {
	return status == StatusCancelledClient || status == StatusCancelledClinic
}

const (
	RequestPending   = "PENDING"
	RequestConfirmed = "CONFIRMED"
	RequestRejected  = "REJECTED"
	RequestExpired   = "EXPIRED"
)

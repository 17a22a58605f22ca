package cash

import "github.com/Ealanisln/vetify-api/internal/httperr"

var (
	ErrNegativeAmount         = httperr.ErrValidation("negative_amount", "Amount cannot be negative.")
	ErrNonPositiveAmount      = httperr.ErrValidation("invalid_amount", "Amount must be greater than zero.")
	ErrAmountPrecision        = httperr.ErrValidation("invalid_amount_precision", "Amounts cannot have more than 2 decimal places.")
	ErrInvalidTransactionType = httperr.ErrValidation("invalid_transaction_type", "Unknown transaction type.")
	ErrSelfHandoff            = httperr.ErrValidation("self_handoff", "A shift cannot be handed off to the same cashier.")
	ErrInvalidRange           = httperr.ErrValidation("invalid_range", "The date range is invalid.")

	ErrDrawerNotFound   = httperr.ErrNotFound("drawer_not_found", "Cash drawer not found.")
	ErrShiftNotFound    = httperr.ErrNotFound("shift_not_found", "Shift not found.")
	ErrCashierNotFound  = httperr.ErrNotFound("cashier_not_found", "Cashier not found.")
	ErrLocationNotFound = httperr.ErrNotFound("location_not_found", "Location not found.")

	ErrDrawerAlreadyOpen     = httperr.ErrConflict("drawer_already_open", "A cash drawer is already open for this location.")
	ErrDrawerNotOpen         = httperr.ErrConflict("drawer_not_open", "The cash drawer is not open.")
	ErrDrawerHasActiveShift  = httperr.ErrConflict("drawer_has_active_shift", "The cash drawer already has an active shift.")
	ErrCashierHasActiveShift = httperr.ErrConflict("cashier_has_active_shift", "The cashier already has an active shift.")
	ErrShiftNotActive        = httperr.ErrConflict("shift_not_active", "The shift is not active.")
)

package httperr

import "errors"

// Kind classifies an expected, user-facing rejection.
type Kind int

const (
	KindConflict Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	default:
		return "conflict"
	}
}

// BusinessError is an expected outcome, not a failure: it carries a
// machine-readable code and is never logged as an error.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string

	// ConflictType names the collection behind a slot conflict.
	ConflictType string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness is a business-rule conflict with no custom message.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

// ErrNotFound is also returned for records owned by another tenant.
func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the BusinessError wrapped in err, if any.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

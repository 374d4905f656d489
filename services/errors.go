package services

import (
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// Error kinds. Every service error wraps exactly one of these so controllers
// can map it to a status code with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
)

var (
	ErrInvalidDateRange   = fmt.Errorf("%w: check_out must be after check_in", ErrValidation)
	ErrRoomNotFound       = fmt.Errorf("%w: room", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("%w: booking", ErrNotFound)
	ErrCustomerNotFound   = fmt.Errorf("%w: customer", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrPaymentNotFound    = fmt.Errorf("%w: payment", ErrNotFound)
	ErrRoomUnavailable    = fmt.Errorf("%w: room is not available for the selected dates", ErrConflict)
	ErrTooLateToCancel    = fmt.Errorf("%w: check-in date has already passed", ErrInvalidState)
	ErrAlreadyCancelled   = fmt.Errorf("%w: booking is already cancelled", ErrInvalidState)
	ErrBookingNotPayable  = fmt.Errorf("%w: booking cannot be paid", ErrInvalidState)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrForbidden)
)

// translateDuplicate converts a store-level unique violation into a Conflict.
// MySQL reports 1062; the string fallback covers the SQLite test driver.
func translateDuplicate(err error, what string) error {
	if err == nil {
		return nil
	}
	if isDuplicateError(err) {
		return fmt.Errorf("%w: %s already exists", ErrConflict, what)
	}
	return err
}

func isDuplicateError(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") || strings.Contains(lower, "unique constraint")
}

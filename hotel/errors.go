package hotel

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room not available for selected dates")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
	ErrPaymentDeclined     = errors.New("payment declined")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")
)

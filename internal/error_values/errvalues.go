package errorvalues

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidDate        = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidPrayerState = errors.New("invalid prayer state")
	ErrInvalidRange       = errors.New("startDate must not be after endDate")

	ErrUserExists       = errors.New("phone number already registered")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("invalid phone number or password")
	ErrInvalidToken     = errors.New("invalid or expired token")

	ErrRecordNotFound    = errors.New("prayer record not found")
	ErrTimesUnavailable  = errors.New("prayer times unavailable")
	ErrStoreNotAvailable = errors.New("storage is not configured")
)

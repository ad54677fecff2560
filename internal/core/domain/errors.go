package domain

import "errors"

var (
	ErrNoToken          = errors.New("no stored session token")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidEntity    = errors.New("invalid entity kind")
	ErrInvalidDay       = errors.New("day index out of range")
	ErrInvalidDayField  = errors.New("unknown day field")
	ErrInvalidDayStatus = errors.New("unknown day status")
	ErrReadOnly         = errors.New("plan is read-only for this user")
	ErrPlanNotFound     = errors.New("plan not found in week view")
	ErrInvalidDates     = errors.New("invalid date range")
)

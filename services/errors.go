package services

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidRange = errors.New("end date must be after start date")
	ErrDateConflict = errors.New("property is already booked for these dates")
	ErrForbidden    = errors.New("not authorized for this resource")
	ErrValidation   = errors.New("invalid input")
)

package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrPlaceSearchFailed      = errors.New("place search failed")
)

package utils

import "errors"

var (
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidQuizAnswers = errors.New("invalid quiz answers")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrInvalidReview      = errors.New("invalid review")
	ErrInvalidSignup      = errors.New("invalid signup")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

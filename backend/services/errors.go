package services

import "errors"

// Sentinel errors the controllers translate to HTTP statuses.
var (
	ErrCourseNotFound         = errors.New("course not found")
	ErrLessonNotFound         = errors.New("lesson not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrNotPurchased           = errors.New("course not purchased")
	ErrLessonAlreadyCompleted = errors.New("lesson already marked complete")
)

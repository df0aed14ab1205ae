package puzzle

import "errors"

// Registry and runner errors.
var (
	// ErrDayNotFound is returned when a day is not registered.
	ErrDayNotFound = errors.New("day not found")

	// ErrDayAlreadyRegistered is returned when registering a duplicate.
	ErrDayAlreadyRegistered = errors.New("day already registered")

	// ErrInvalidDay is returned for day numbers outside 1..25.
	ErrInvalidDay = errors.New("day must be between 1 and 25")

	// ErrNoParts is returned when a day has no solvers.
	ErrNoParts = errors.New("day has no parts")

	// ErrNilSolver is returned when a part has no solve function.
	ErrNilSolver = errors.New("part solver cannot be nil")

	// ErrPartNotFound is returned when asking for a part a day lacks.
	ErrPartNotFound = errors.New("part not found")
)

package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrNoOpenCheckIn    = errors.New("no active check-in found for today")
)

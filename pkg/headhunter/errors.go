package headhunter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEmployerID reports an employer id that is not a positive integer.
	ErrInvalidEmployerID = errors.New("headhunter: invalid employer id")

	// ErrEmployerNotFound reports an employer id unknown to the API.
	ErrEmployerNotFound = errors.New("headhunter: employer not found")
)

// LookupError reports an unexpected status from the employer lookup endpoint.
type LookupError struct {
	EmployerID int
	StatusCode int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("headhunter: employer %d lookup failed with status %d", e.EmployerID, e.StatusCode)
}

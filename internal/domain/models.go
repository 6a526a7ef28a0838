package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunID identifies one collection run
type RunID = uuid.UUID

// Area is a geographic region referenced by vacancies
type Area struct {
	ID   int
	Name string
	URL  string
}

// Employer is an organization that posts vacancies. OpenVacancies is not
// derivable from the list payload and stays zero.
type Employer struct {
	ID            int
	Name          string
	URL           string
	OpenVacancies int
}

// Vacancy is the normalized, flattened vacancy entity
type Vacancy struct {
	ID         int
	Name       string
	AreaID     int
	SalaryFrom *int
	EmployerID int
	URL        string
	Source     string
}

// Snapshot is the full normalized state of a source's accumulated data
type Snapshot struct {
	Source    string
	Vacancies []Vacancy
	Areas     []Area
	Employers []Employer
}

// EmployerFetch is the per-employer outcome of a collection run. Truncated
// carries the cause when pagination stopped early with partial data kept;
// Err carries a validation or lookup failure.
type EmployerFetch struct {
	EmployerID int
	Loaded     int
	Pages      int
	Truncated  error
	Err        error
}

// CollectionReport summarizes one collection run
type CollectionReport struct {
	RunID      RunID
	Source     string
	Fetches    []EmployerFetch
	Stored     int
	Exported   bool
	StartedAt  time.Time
	FinishedAt time.Time
}

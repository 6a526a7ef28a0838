package vacancy

import (
	"context"

	"github.com/Just-Ren/Kursovaya-DB/internal/domain"
)

// Source represents an external vacancy data source (hh.ru, a fixture server, etc.)
type Source interface {
	// e.g. "hh"
	Name() string

	// Collect fetches vacancies for the given employers and returns the
	// normalized snapshot of everything accumulated so far, plus the
	// per-employer outcomes of this pass.
	Collect(ctx context.Context, employerIDs []int) (domain.Snapshot, []domain.EmployerFetch, error)
}

package vacancy

import (
	"context"

	"github.com/Just-Ren/Kursovaya-DB/internal/domain"
)

// Repository persists and loads vacancy snapshots
type Repository interface {
	// UpsertSnapshot merges the snapshot into storage, keyed on source +
	// vacancy id, and tags written vacancies with the run id.
	UpsertSnapshot(ctx context.Context, runID domain.RunID, snap domain.Snapshot) error

	// FindByEmployer loads stored vacancies for one employer.
	FindByEmployer(ctx context.Context, employerID int) ([]domain.Vacancy, error)
}

// Exporter pushes a snapshot to an external destination
type Exporter interface {
	Export(ctx context.Context, snap domain.Snapshot) error
}

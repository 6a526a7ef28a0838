package headhunter

import (
	"context"
	"fmt"
	"sort"

	"github.com/Just-Ren/Kursovaya-DB/internal/domain"
	vacancydomain "github.com/Just-Ren/Kursovaya-DB/internal/domain/vacancy"
	"github.com/Just-Ren/Kursovaya-DB/pkg/headhunter"
)

const sourceName = "hh"

// fetchClient describes the subset of the hh.ru client used by the source.
type fetchClient interface {
	FetchEmployers(ctx context.Context, employerIDs []int) []headhunter.FetchResult
	Vacancies() []headhunter.VacancyRow
	Areas() map[int]headhunter.AreaInfo
	Employers() map[int]headhunter.EmployerInfo
}

// Source implements vacancy.Source using the hh.ru public API
type Source struct {
	client fetchClient
}

// NewSource builds a hh.ru source
func NewSource(client *headhunter.Client) (*Source, error) {
	if client == nil {
		return nil, fmt.Errorf("headhunter source: client is required")
	}
	return &Source{client: client}, nil
}

// Name returns source identifier
func (s *Source) Name() string {
	return sourceName
}

// Collect fetches the employers' vacancies and snapshots the client's
// accumulated data. Area and employer lists are sorted by id so snapshots
// are deterministic.
func (s *Source) Collect(ctx context.Context, employerIDs []int) (domain.Snapshot, []domain.EmployerFetch, error) {
	if s == nil || s.client == nil {
		return domain.Snapshot{}, nil, fmt.Errorf("headhunter source: client is nil")
	}

	results := s.client.FetchEmployers(ctx, employerIDs)

	fetches := make([]domain.EmployerFetch, 0, len(results))
	for _, r := range results {
		fetches = append(fetches, domain.EmployerFetch{
			EmployerID: r.EmployerID,
			Loaded:     r.Loaded,
			Pages:      r.Pages,
			Truncated:  r.Truncated,
			Err:        r.Err,
		})
	}

	return s.snapshot(), fetches, nil
}

func (s *Source) snapshot() domain.Snapshot {
	rows := s.client.Vacancies()
	vacancies := make([]domain.Vacancy, 0, len(rows))
	for _, row := range rows {
		vacancies = append(vacancies, domain.Vacancy{
			ID:         row.ID,
			Name:       row.Name,
			AreaID:     row.AreaID,
			SalaryFrom: row.SalaryFrom,
			EmployerID: row.EmployerID,
			URL:        row.URL,
			Source:     sourceName,
		})
	}

	areaMap := s.client.Areas()
	areas := make([]domain.Area, 0, len(areaMap))
	for id, info := range areaMap {
		areas = append(areas, domain.Area{ID: id, Name: info.Name, URL: info.URL})
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].ID < areas[j].ID })

	employerMap := s.client.Employers()
	employers := make([]domain.Employer, 0, len(employerMap))
	for id, info := range employerMap {
		employers = append(employers, domain.Employer{
			ID:            id,
			Name:          info.Name,
			URL:           info.URL,
			OpenVacancies: info.OpenVacancies,
		})
	}
	sort.Slice(employers, func(i, j int) bool { return employers[i].ID < employers[j].ID })

	return domain.Snapshot{
		Source:    sourceName,
		Vacancies: vacancies,
		Areas:     areas,
		Employers: employers,
	}
}

var _ vacancydomain.Source = (*Source)(nil)

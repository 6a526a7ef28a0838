package export

import (
	"context"
	"fmt"

	"github.com/Just-Ren/Kursovaya-DB/internal/domain"
	"github.com/Just-Ren/Kursovaya-DB/internal/domain/vacancy"
	"github.com/Just-Ren/Kursovaya-DB/pkg/sheets"
)

// Ensure SheetsExporter implements vacancy.Exporter
var _ vacancy.Exporter = (*SheetsExporter)(nil)

var header = []interface{}{"id", "name", "area_id", "salary_from", "employer_id", "url", "source"}

// SheetsExporter writes the flattened vacancy list to a Google Sheets range
type SheetsExporter struct {
	client        *sheets.Client
	spreadsheetID string
	valueRange    string
}

// NewSheetsExporter creates a SheetsExporter for one spreadsheet range
func NewSheetsExporter(client *sheets.Client, spreadsheetID, valueRange string) (*SheetsExporter, error) {
	if client == nil {
		return nil, fmt.Errorf("sheets exporter: client is required")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets exporter: spreadsheet id is required")
	}
	if valueRange == "" {
		return nil, fmt.Errorf("sheets exporter: range is required")
	}

	return &SheetsExporter{
		client:        client,
		spreadsheetID: spreadsheetID,
		valueRange:    valueRange,
	}, nil
}

// Export replaces the configured range with a header row followed by one row
// per vacancy, in snapshot order. A missing salary lower bound exports as an
// empty cell.
func (e *SheetsExporter) Export(ctx context.Context, snap domain.Snapshot) error {
	rows := make([][]interface{}, 0, len(snap.Vacancies)+1)
	rows = append(rows, header)

	for _, vac := range snap.Vacancies {
		var salaryFrom interface{} = ""
		if vac.SalaryFrom != nil {
			salaryFrom = *vac.SalaryFrom
		}

		rows = append(rows, []interface{}{
			vac.ID,
			vac.Name,
			vac.AreaID,
			salaryFrom,
			vac.EmployerID,
			vac.URL,
			vac.Source,
		})
	}

	return e.client.ReplaceValues(ctx, e.spreadsheetID, e.valueRange, rows)
}

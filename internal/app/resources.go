package app

import (
	"context"
	"fmt"

	"github.com/Just-Ren/Kursovaya-DB/internal/config"
	"github.com/Just-Ren/Kursovaya-DB/internal/domain/vacancy"
	"github.com/Just-Ren/Kursovaya-DB/internal/export"
	"github.com/Just-Ren/Kursovaya-DB/pkg/headhunter"
	"github.com/Just-Ren/Kursovaya-DB/pkg/logging"
	pkgneo4j "github.com/Just-Ren/Kursovaya-DB/pkg/neo4j"
	"github.com/Just-Ren/Kursovaya-DB/pkg/sheets"
)

// Resources bundles the wired collection pipeline
type Resources struct {
	Service     vacancy.Service
	HHClient    *headhunter.Client
	Neo4jClient *pkgneo4j.Client
}

// Close releases held connections
func (r *Resources) Close(ctx context.Context) error {
	if r.Neo4jClient != nil {
		return r.Neo4jClient.Close(ctx)
	}
	return nil
}

// newResources creates Resources struct
func newResources(
	service vacancy.Service,
	hhClient *headhunter.Client,
	neo4jClient *pkgneo4j.Client,
) *Resources {
	return &Resources{
		Service:     service,
		HHClient:    hhClient,
		Neo4jClient: neo4jClient,
	}
}

// provideNeo4jConfig extracts Neo4j config from main config
func provideNeo4jConfig(cfg config.Config) pkgneo4j.Config {
	return pkgneo4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	}
}

// provideHHConfig extracts hh.ru client config from main config
func provideHHConfig(cfg config.Config, logger *logging.Logger) headhunter.Config {
	return headhunter.Config{
		VacanciesURL: cfg.HH.VacanciesURL,
		EmployersURL: cfg.HH.EmployersURL,
		UserAgent:    cfg.HH.UserAgent,
		PageSize:     cfg.HH.PageSize,
		Logger:       logger,
	}
}

// provideExporter builds the Google Sheets exporter when one is configured.
// A nil exporter disables export.
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (vacancy.Exporter, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		logger.Info("sheets export disabled")
		return nil, nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	exporter, err := export.NewSheetsExporter(client, cfg.Sheets.SpreadsheetID, cfg.Sheets.Range)
	if err != nil {
		return nil, err
	}

	logger.Info("sheets export enabled", "spreadsheet_id", cfg.Sheets.SpreadsheetID)
	return exporter, nil
}

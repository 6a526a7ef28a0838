//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/Just-Ren/Kursovaya-DB/internal/config"
	"github.com/Just-Ren/Kursovaya-DB/internal/domain/vacancy"
	hhsource "github.com/Just-Ren/Kursovaya-DB/internal/domain/vacancy/sources/headhunter"
	storage "github.com/Just-Ren/Kursovaya-DB/internal/storage/neo4j"
	"github.com/Just-Ren/Kursovaya-DB/pkg/headhunter"
	"github.com/Just-Ren/Kursovaya-DB/pkg/logging"
	n4j "github.com/Just-Ren/Kursovaya-DB/pkg/neo4j"
)

// InitializeResources creates Resources with the collection pipeline wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Neo4j
		provideNeo4jConfig,
		n4j.NewClient,

		// Infrastructure - hh.ru
		provideHHConfig,
		headhunter.NewClient,

		// Repositories
		storage.NewVacancyRepository,
		wire.Bind(new(vacancy.Repository), new(*storage.VacancyRepository)),

		// Sources
		hhsource.NewSource,
		wire.Bind(new(vacancy.Source), new(*hhsource.Source)),

		// Export
		provideExporter,

		// Services
		vacancy.NewServiceWithDeps,

		newResources,
	)

	return &Resources{}, nil
}

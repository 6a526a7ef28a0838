package neo4j

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/Just-Ren/Kursovaya-DB/internal/domain"
	"github.com/Just-Ren/Kursovaya-DB/internal/domain/vacancy"

	pkgneo4j "github.com/Just-Ren/Kursovaya-DB/pkg/neo4j"
)

// Ensure VacancyRepository implements vacancy.Repository
var _ vacancy.Repository = (*VacancyRepository)(nil)

// VacancyRepository implements vacancy.Repository with Neo4j
type VacancyRepository struct {
	client *pkgneo4j.Client
}

// NewVacancyRepository creates a VacancyRepository with a Neo4j client
func NewVacancyRepository(client *pkgneo4j.Client) *VacancyRepository {
	return &VacancyRepository{
		client: client,
	}
}

// UpsertSnapshot merges areas, employers and vacancies into the graph inside
// one write transaction. Vacancies are keyed on source + id; relationships to
// Area and Employer nodes are skipped when the record carries no id for them.
func (r *VacancyRepository) UpsertSnapshot(ctx context.Context, runID domain.RunID, snap domain.Snapshot) error {
	if len(snap.Vacancies) == 0 {
		return nil
	}

	session := r.client.WriteSession(ctx)
	defer session.Close(ctx)

	areaQuery := `
		UNWIND $areas AS area
		MERGE (a:Area {id: area.id})
		SET a.name = area.name,
		    a.url = area.url
	`

	employerQuery := `
		UNWIND $employers AS emp
		MERGE (e:Employer {id: emp.id})
		SET e.name = emp.name,
		    e.url = emp.url,
		    e.openVacancies = emp.openVacancies
	`

	vacancyQuery := `
		UNWIND $vacancies AS vac
		MERGE (v:Vacancy {source: vac.source, id: vac.id})
		SET v.name = vac.name,
		    v.url = vac.url,
		    v.salaryFrom = vac.salaryFrom,
		    v.areaId = vac.areaId,
		    v.employerId = vac.employerId,
		    v.runId = $runId
		FOREACH (_ IN CASE WHEN vac.employerId > 0 THEN [1] ELSE [] END |
			MERGE (e:Employer {id: vac.employerId})
			MERGE (v)-[:POSTED_BY]->(e)
		)
		FOREACH (_ IN CASE WHEN vac.areaId > 0 THEN [1] ELSE [] END |
			MERGE (a:Area {id: vac.areaId})
			MERGE (v)-[:LOCATED_IN]->(a)
		)
	`

	areasData := make([]map[string]interface{}, 0, len(snap.Areas))
	for _, area := range snap.Areas {
		areasData = append(areasData, map[string]interface{}{
			"id":   area.ID,
			"name": area.Name,
			"url":  area.URL,
		})
	}

	employersData := make([]map[string]interface{}, 0, len(snap.Employers))
	for _, emp := range snap.Employers {
		employersData = append(employersData, map[string]interface{}{
			"id":            emp.ID,
			"name":          emp.Name,
			"url":           emp.URL,
			"openVacancies": emp.OpenVacancies,
		})
	}

	vacanciesData := make([]map[string]interface{}, 0, len(snap.Vacancies))
	for _, vac := range snap.Vacancies {
		var salaryFrom interface{}
		if vac.SalaryFrom != nil {
			salaryFrom = *vac.SalaryFrom
		}

		vacanciesData = append(vacanciesData, map[string]interface{}{
			"id":         vac.ID,
			"source":     vac.Source,
			"name":       vac.Name,
			"url":        vac.URL,
			"salaryFrom": salaryFrom,
			"areaId":     vac.AreaID,
			"employerId": vac.EmployerID,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, areaQuery, map[string]interface{}{"areas": areasData}); err != nil {
			return nil, err
		}
		if _, err := tx.Run(ctx, employerQuery, map[string]interface{}{"employers": employersData}); err != nil {
			return nil, err
		}
		result, err := tx.Run(ctx, vacancyQuery, map[string]interface{}{
			"vacancies": vacanciesData,
			"runId":     runID.String(),
		})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})

	return err
}

// FindByEmployer loads stored vacancies posted by one employer.
func (r *VacancyRepository) FindByEmployer(ctx context.Context, employerID int) ([]domain.Vacancy, error) {
	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (v:Vacancy)-[:POSTED_BY]->(:Employer {id: $employerId})
		RETURN v
		ORDER BY v.id
	`

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := tx.Run(ctx, query, map[string]interface{}{"employerId": employerID})
		if err != nil {
			return nil, err
		}
		return records.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}

	records := result.([]*neo4j.Record)
	vacancies := make([]domain.Vacancy, 0, len(records))

	for _, record := range records {
		nodeVal, ok := record.Get("v")
		if !ok {
			continue
		}
		node, ok := nodeVal.(neo4j.Node)
		if !ok {
			continue
		}

		vacancies = append(vacancies, vacancyFromProps(node.Props))
	}

	return vacancies, nil
}

func vacancyFromProps(props map[string]interface{}) domain.Vacancy {
	vac := domain.Vacancy{}

	if v, ok := props["id"].(int64); ok {
		vac.ID = int(v)
	}
	if v, ok := props["name"].(string); ok {
		vac.Name = v
	}
	if v, ok := props["url"].(string); ok {
		vac.URL = v
	}
	if v, ok := props["source"].(string); ok {
		vac.Source = v
	}
	if v, ok := props["areaId"].(int64); ok {
		vac.AreaID = int(v)
	}
	if v, ok := props["employerId"].(int64); ok {
		vac.EmployerID = int(v)
	}
	if v, ok := props["salaryFrom"].(int64); ok {
		salary := int(v)
		vac.SalaryFrom = &salary
	}

	return vac
}

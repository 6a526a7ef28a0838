package headhunter

// AreaInfo is the projected view of a geographic area.
type AreaInfo struct {
	Name string
	URL  string
}

// EmployerInfo is the projected view of an employer. OpenVacancies is
// reserved: the list endpoint does not carry the employer's open vacancy
// count, so it stays zero.
type EmployerInfo struct {
	Name          string
	URL           string
	OpenVacancies int
}

// VacancyRow is a flattened vacancy with integer-coerced identifiers.
type VacancyRow struct {
	ID         int
	Name       string
	AreaID     int
	SalaryFrom *int
	EmployerID int
	URL        string
}

// All returns the accumulated raw records. The slice is shared with the
// client; callers must not modify it.
func (c *Client) All() []Vacancy {
	c.log.Info("getting loaded vacancies", "count", len(c.loaded))
	return c.loaded
}

// Areas returns the distinct areas across the accumulated records, keyed by
// integer area id. The first occurrence of an id wins. Records without a
// usable area id are skipped.
func (c *Client) Areas() map[int]AreaInfo {
	c.log.Debug("getting areas")

	areas := make(map[int]AreaInfo)
	for _, v := range c.loaded {
		if v.Area == nil {
			continue
		}
		id, err := v.Area.ID.Int()
		if err != nil {
			continue
		}
		if _, ok := areas[id]; !ok {
			areas[id] = AreaInfo{Name: v.Area.Name, URL: v.Area.URL}
		}
	}
	return areas
}

// Employers returns the distinct employers across the accumulated records,
// keyed by integer employer id. The first occurrence of an id wins.
func (c *Client) Employers() map[int]EmployerInfo {
	c.log.Debug("getting employers")

	employers := make(map[int]EmployerInfo)
	for _, v := range c.loaded {
		if v.Employer == nil {
			continue
		}
		id, err := v.Employer.ID.Int()
		if err != nil {
			continue
		}
		if _, ok := employers[id]; !ok {
			employers[id] = EmployerInfo{Name: v.Employer.Name, URL: v.Employer.URL}
		}
	}
	return employers
}

// Vacancies flattens the accumulated records in order, one row per record.
// A record missing a nested object keeps the zero value for the derived
// field, so the output length always matches the accumulated list.
func (c *Client) Vacancies() []VacancyRow {
	c.log.Info("getting vacancies", "count", len(c.loaded))

	rows := make([]VacancyRow, 0, len(c.loaded))
	for _, v := range c.loaded {
		row := VacancyRow{Name: v.Name, URL: v.URL}
		row.ID, _ = v.ID.Int()
		if v.Area != nil {
			row.AreaID, _ = v.Area.ID.Int()
		}
		if v.Employer != nil {
			row.EmployerID, _ = v.Employer.ID.Int()
		}
		if v.Salary != nil {
			row.SalaryFrom = v.Salary.From
		}
		rows = append(rows, row)
	}
	return rows
}

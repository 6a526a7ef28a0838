package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the vacancy collector
type Config struct {
	LogLevel string
	HH       struct {
		VacanciesURL string
		EmployersURL string
		UserAgent    string
		PageSize     int
	}
	Neo4j struct {
		URI      string
		Username string
		Password string
	}
	Sheets struct {
		CredentialsPath string
		SpreadsheetID   string // export disabled when empty
		Range           string
	}
}

// Load populates config from environment variables. A .env file in the
// working directory is read first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel: "info",
	}
	cfg.HH.UserAgent = "HH-User-Agent"
	cfg.HH.PageSize = 100
	cfg.Sheets.Range = "Vacancies!A1"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.HH.VacanciesURL = os.Getenv("HH_VACANCIES_URL")
	cfg.HH.EmployersURL = os.Getenv("HH_EMPLOYERS_URL")
	if v := os.Getenv("HH_USER_AGENT"); v != "" {
		cfg.HH.UserAgent = v
	}
	if v := os.Getenv("HH_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid HH_PAGE_SIZE: %q", v)
		}
		cfg.HH.PageSize = n
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.Sheets.CredentialsPath = os.Getenv("SHEETS_CREDENTIALS_PATH")
	cfg.Sheets.SpreadsheetID = os.Getenv("SHEETS_SPREADSHEET_ID")
	if v := os.Getenv("SHEETS_RANGE"); v != "" {
		cfg.Sheets.Range = v
	}

	var missingVars []string

	if cfg.Neo4j.URI == "" {
		missingVars = append(missingVars, "NEO4J_URI")
	}
	if cfg.Neo4j.Username == "" {
		missingVars = append(missingVars, "NEO4J_USERNAME")
	}
	if cfg.Neo4j.Password == "" {
		missingVars = append(missingVars, "NEO4J_PASSWORD")
	}

	if cfg.Sheets.SpreadsheetID != "" && cfg.Sheets.CredentialsPath == "" {
		missingVars = append(missingVars, "SHEETS_CREDENTIALS_PATH")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

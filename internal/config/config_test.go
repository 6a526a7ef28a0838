package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("NEO4J_URI", "bolt://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.HH.PageSize != 100 {
		t.Errorf("HH.PageSize = %d, want 100", cfg.HH.PageSize)
	}
	if cfg.HH.UserAgent != "HH-User-Agent" {
		t.Errorf("HH.UserAgent = %q, want HH-User-Agent", cfg.HH.UserAgent)
	}
	if cfg.Sheets.SpreadsheetID != "" {
		t.Errorf("Sheets.SpreadsheetID = %q, want empty (export disabled)", cfg.Sheets.SpreadsheetID)
	}
}

func TestLoadMissingNeo4jVars(t *testing.T) {
	t.Setenv("NEO4J_URI", "")
	t.Setenv("NEO4J_USERNAME", "")
	t.Setenv("NEO4J_PASSWORD", "secret")

	_, err := Load()
	if err == nil {
		t.Fatal("Load = nil error, want missing vars error")
	}
	for _, name := range []string{"NEO4J_URI", "NEO4J_USERNAME"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
}

func TestLoadInvalidPageSize(t *testing.T) {
	setRequired(t)
	t.Setenv("HH_PAGE_SIZE", "lots")

	if _, err := Load(); err == nil {
		t.Fatal("Load = nil error, want invalid page size error")
	}
}

func TestLoadSheetsRequiresCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("SHEETS_SPREADSHEET_ID", "sheet-1")
	t.Setenv("SHEETS_CREDENTIALS_PATH", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "SHEETS_CREDENTIALS_PATH") {
		t.Fatalf("Load = %v, want missing SHEETS_CREDENTIALS_PATH error", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HH_PAGE_SIZE", "50")
	t.Setenv("HH_USER_AGENT", "collector-test")
	t.Setenv("HH_VACANCIES_URL", "http://localhost:9999/vacancies")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.HH.PageSize != 50 {
		t.Errorf("HH.PageSize = %d, want 50", cfg.HH.PageSize)
	}
	if cfg.HH.UserAgent != "collector-test" {
		t.Errorf("HH.UserAgent = %q, want collector-test", cfg.HH.UserAgent)
	}
	if cfg.HH.VacanciesURL != "http://localhost:9999/vacancies" {
		t.Errorf("HH.VacanciesURL = %q, want override", cfg.HH.VacanciesURL)
	}
}

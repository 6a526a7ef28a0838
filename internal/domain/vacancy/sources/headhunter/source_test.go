package headhunter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Just-Ren/Kursovaya-DB/pkg/headhunter"
)

func newTestSource(t *testing.T, handler http.Handler) *Source {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := headhunter.NewClient(headhunter.Config{
		VacanciesURL: srv.URL + "/vacancies",
		EmployersURL: srv.URL + "/employers",
		HTTPClient:   srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	source, err := NewSource(client)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	return source
}

func TestNewSourceRequiresClient(t *testing.T) {
	if _, err := NewSource(nil); err == nil {
		t.Fatal("NewSource(nil) = nil error, want error")
	}
}

func TestCollectBuildsSnapshot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/employers/10", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/vacancies", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"pages": 1,
			"items": []map[string]any{
				{
					"id":       "2",
					"name":     "B",
					"area":     map[string]any{"id": "5", "name": "Kazan", "url": "a5"},
					"employer": map[string]any{"id": "10", "name": "Acme", "url": "e10"},
					"salary":   map[string]any{"from": 2000},
					"url":      "u2",
				},
				{
					"id":       "1",
					"name":     "A",
					"area":     map[string]any{"id": "1", "name": "Moscow", "url": "a1"},
					"employer": map[string]any{"id": "10", "name": "Acme", "url": "e10"},
					"salary":   map[string]any{"from": 1000},
					"url":      "u1",
				},
			},
		})
	})

	source := newTestSource(t, mux)

	snap, fetches, err := source.Collect(context.Background(), []int{10})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if snap.Source != "hh" {
		t.Errorf("snap.Source = %q, want hh", snap.Source)
	}

	// Vacancy order follows accumulation order.
	if len(snap.Vacancies) != 2 || snap.Vacancies[0].ID != 2 || snap.Vacancies[1].ID != 1 {
		t.Errorf("vacancies = %+v, want ids 2, 1 in order", snap.Vacancies)
	}
	if snap.Vacancies[0].Source != "hh" {
		t.Errorf("vacancy source = %q, want hh", snap.Vacancies[0].Source)
	}

	// Areas and employers come out sorted by id.
	if len(snap.Areas) != 2 || snap.Areas[0].ID != 1 || snap.Areas[1].ID != 5 {
		t.Errorf("areas = %+v, want ids 1, 5", snap.Areas)
	}
	if len(snap.Employers) != 1 || snap.Employers[0].ID != 10 || snap.Employers[0].Name != "Acme" {
		t.Errorf("employers = %+v, want Acme (10)", snap.Employers)
	}
	if snap.Employers[0].OpenVacancies != 0 {
		t.Errorf("OpenVacancies = %d, want 0", snap.Employers[0].OpenVacancies)
	}

	if len(fetches) != 1 {
		t.Fatalf("fetches = %d, want 1", len(fetches))
	}
	if fetches[0].EmployerID != 10 || fetches[0].Loaded != 2 || fetches[0].Err != nil {
		t.Errorf("fetches[0] = %+v, want employer 10 with 2 loaded", fetches[0])
	}
}

func TestCollectRecordsPerEmployerFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/employers/9", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	source := newTestSource(t, mux)

	snap, fetches, err := source.Collect(context.Background(), []int{9})
	if err != nil {
		t.Fatalf("Collect: %v, want nil (per-employer failures are recorded)", err)
	}
	if len(snap.Vacancies) != 0 {
		t.Errorf("vacancies = %d, want 0", len(snap.Vacancies))
	}
	if len(fetches) != 1 || !errors.Is(fetches[0].Err, headhunter.ErrEmployerNotFound) {
		t.Errorf("fetches = %+v, want not-found error for employer 9", fetches)
	}
}

package headhunter

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"
)

func TestFetchEmployerIntegration(t *testing.T) {
	raw := os.Getenv("HH_EMPLOYER_ID")
	if raw == "" {
		t.Skip("HH_EMPLOYER_ID must be set to run this test")
	}

	employerID, err := strconv.Atoi(raw)
	if err != nil {
		t.Fatalf("HH_EMPLOYER_ID = %q is not an integer", raw)
	}

	client, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := client.FetchEmployer(ctx, employerID)
	if err != nil {
		t.Fatalf("FetchEmployer: %v", err)
	}
	if res.Truncated != nil {
		t.Logf("pagination truncated: %v", res.Truncated)
	}

	t.Logf("loaded %d vacancies over %d pages for employer %d", res.Loaded, res.Pages, employerID)

	for i, row := range client.Vacancies() {
		if i >= 5 {
			break
		}
		t.Logf("vacancy %d: %s (%s)", row.ID, row.Name, row.URL)
	}
}

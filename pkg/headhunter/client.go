package headhunter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Just-Ren/Kursovaya-DB/pkg/logging"
)

const (
	defaultVacanciesURL = "https://api.hh.ru/vacancies"
	defaultEmployersURL = "https://api.hh.ru/employers"
	defaultUserAgent    = "HH-User-Agent"
	defaultPageSize     = 100
	maxPageSize         = 100
)

// NewClient instantiates a hh.ru API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.PageSize > maxPageSize {
		return nil, fmt.Errorf("headhunter: page size must not exceed %d", maxPageSize)
	}

	vacanciesURL := cfg.VacanciesURL
	if vacanciesURL == "" {
		vacanciesURL = defaultVacanciesURL
	}

	employersURL := cfg.EmployersURL
	if employersURL == "" {
		employersURL = defaultEmployersURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &Client{
		vacanciesURL: strings.TrimSuffix(vacanciesURL, "/"),
		employersURL: strings.TrimSuffix(employersURL, "/"),
		userAgent:    userAgent,
		pageSize:     pageSize,
		httpClient:   httpClient,
		log:          log,
	}, nil
}

// ValidateEmployerID accepts positive integers only.
func ValidateEmployerID(employerID int) error {
	if employerID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidEmployerID, employerID)
	}
	return nil
}

// CheckEmployer verifies that the employer id is known to the API. It returns
// nil on 200, ErrEmployerNotFound on 404 and a LookupError on any other
// status. There is no retry.
func (c *Client) CheckEmployer(ctx context.Context, employerID int) error {
	c.log.Debug("checking employer existence", "employer_id", employerID)

	u := fmt.Sprintf("%s/%d", c.employersURL, employerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("headhunter: build lookup request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("headhunter: employer lookup: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: %d", ErrEmployerNotFound, employerID)
	default:
		return &LookupError{EmployerID: employerID, StatusCode: resp.StatusCode}
	}
}

// FetchEmployer validates the employer id, confirms it exists and pages
// through the employer's vacancies, appending every item to the accumulated
// list. A mid-pagination failure stops the loop and is reported through
// FetchResult.Truncated; items fetched before it are kept and no error is
// returned for it.
func (c *Client) FetchEmployer(ctx context.Context, employerID int) (FetchResult, error) {
	res := FetchResult{EmployerID: employerID}

	if err := ValidateEmployerID(employerID); err != nil {
		return res, err
	}
	if err := c.CheckEmployer(ctx, employerID); err != nil {
		return res, err
	}

	c.log.Info("loading vacancies", "employer_id", employerID)

	for page := 0; ; page++ {
		c.log.Debug("fetching page", "employer_id", employerID, "page", page)

		pg, err := c.fetchPage(ctx, employerID, page)
		if err != nil {
			c.log.Error("pagination aborted", "employer_id", employerID, "page", page, "err", err)
			res.Truncated = err
			break
		}

		c.loaded = append(c.loaded, pg.Items...)
		res.Loaded += len(pg.Items)
		res.Pages = pg.Pages

		c.log.Debug("page loaded", "employer_id", employerID, "page", page, "items", len(pg.Items))

		if page >= pg.Pages-1 {
			break
		}
	}

	c.log.Info("finished loading vacancies", "employer_id", employerID, "loaded", res.Loaded)
	return res, nil
}

// FetchEmployers fetches each employer in the given order. A failure is
// recorded on that employer's result and does not stop the batch.
func (c *Client) FetchEmployers(ctx context.Context, employerIDs []int) []FetchResult {
	c.log.Info("loading vacancies for employers", "count", len(employerIDs))

	results := make([]FetchResult, 0, len(employerIDs))
	for _, id := range employerIDs {
		res, err := c.FetchEmployer(ctx, id)
		if err != nil {
			c.log.Error("employer fetch failed", "employer_id", id, "err", err)
			res.Err = err
		}
		results = append(results, res)
	}
	return results
}

// fetchPage requests one page of the employer's vacancies. The page cursor
// and employer filter are explicit arguments; the client mutates nothing
// besides the accumulated list.
func (c *Client) fetchPage(ctx context.Context, employerID, page int) (vacanciesPage, error) {
	var out vacanciesPage

	u, err := url.Parse(c.vacanciesURL)
	if err != nil {
		return out, fmt.Errorf("headhunter: parse vacancies url: %w", err)
	}

	values := url.Values{}
	values.Set("per_page", strconv.Itoa(c.pageSize))
	values.Set("page", strconv.Itoa(page))
	values.Set("employer_id", strconv.Itoa(employerID))
	values.Set("only_with_salary", "true")
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return out, fmt.Errorf("headhunter: build list request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("headhunter: list request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return out, fmt.Errorf("headhunter: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("headhunter: decode response: %w", err)
	}

	return out, nil
}

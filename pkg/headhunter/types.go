package headhunter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Just-Ren/Kursovaya-DB/pkg/logging"
)

// Config defines hh.ru API client settings
type Config struct {
	// VacanciesURL overrides the public vacancies list endpoint.
	VacanciesURL string
	// EmployersURL overrides the public employer lookup endpoint.
	EmployersURL string
	UserAgent    string
	PageSize     int
	HTTPClient   *http.Client
	Logger       *logging.Logger
}

// Client queries the hh.ru public API and accumulates fetched vacancies.
// The accumulated list only grows; a Client is not safe for concurrent use.
type Client struct {
	vacanciesURL string
	employersURL string
	userAgent    string
	pageSize     int
	httpClient   *http.Client
	log          *logging.Logger

	loaded []Vacancy
}

// ID is a numeric identifier that the API serializes as a JSON string but
// some payloads carry as a bare number. Both forms decode.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*id = ID(s)
	return nil
}

// Int coerces the identifier to an integer.
func (id ID) Int() (int, error) {
	if id == "" {
		return 0, fmt.Errorf("headhunter: empty id")
	}
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, fmt.Errorf("headhunter: non-numeric id %q", string(id))
	}
	return n, nil
}

// Vacancy is a raw record from the vacancies list endpoint. Nested objects
// may be absent.
type Vacancy struct {
	ID       ID           `json:"id"`
	Name     string       `json:"name"`
	Area     *AreaRef     `json:"area"`
	Employer *EmployerRef `json:"employer"`
	Salary   *Salary      `json:"salary"`
	URL      string       `json:"url"`
}

// AreaRef is the geographic region attached to a vacancy.
type AreaRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EmployerRef is the organization attached to a vacancy.
type EmployerRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Salary holds the declared compensation range. From is null when the lower
// bound is not stated.
type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

type vacanciesPage struct {
	Items []Vacancy `json:"items"`
	Found int       `json:"found"`
	Pages int       `json:"pages"`
	Page  int       `json:"page"`
}

// FetchResult describes the outcome of one employer's fetch.
type FetchResult struct {
	EmployerID int
	// Loaded counts items appended to the accumulated list by this fetch.
	Loaded int
	// Pages is the total page count last reported by the API.
	Pages int
	// Truncated is non-nil when pagination stopped before the last page.
	// Items fetched up to that point stay on the accumulated list.
	Truncated error
	// Err records a validation or lookup failure (set by batch fetches).
	Err error
}

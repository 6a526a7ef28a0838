package vacancy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Just-Ren/Kursovaya-DB/internal/domain"
	"github.com/Just-Ren/Kursovaya-DB/pkg/logging"
)

// Service runs collection passes: fetch from the source, persist, export.
type Service interface {
	Collect(ctx context.Context, employerIDs []int) (domain.CollectionReport, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	source   Source
	repo     Repository
	exporter Exporter
	log      *logging.Logger
	clock    func() time.Time
}

// WithSource sets the vacancy data source
func WithSource(source Source) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithRepository sets the repository
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithExporter sets an optional snapshot exporter
func WithExporter(exporter Exporter) Option {
	return func(c *config) {
		c.exporter = exporter
	}
}

// WithLogger sets the logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		log:   logging.Nop(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("vacancy.Service: repository is required")
	}
	if cfg.source == nil {
		return nil, fmt.Errorf("vacancy.Service: source is required")
	}

	return &service{
		source:   cfg.source,
		repo:     cfg.repo,
		exporter: cfg.exporter,
		log:      cfg.log,
		clock:    cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible).
// The exporter may be nil.
func NewServiceWithDeps(repo Repository, source Source, exporter Exporter, log *logging.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vacancy.Service: repository is required")
	}
	if source == nil {
		return nil, fmt.Errorf("vacancy.Service: source is required")
	}
	if log == nil {
		log = logging.Nop()
	}

	return &service{
		source:   source,
		repo:     repo,
		exporter: exporter,
		log:      log,
		clock:    time.Now,
	}, nil
}

type service struct {
	source   Source
	repo     Repository
	exporter Exporter
	log      *logging.Logger
	clock    func() time.Time
}

// Collect fetches the employers' vacancies from the source, persists the
// resulting snapshot and pushes it to the exporter when one is configured.
// Export failures are logged but do not fail the run.
func (s *service) Collect(ctx context.Context, employerIDs []int) (domain.CollectionReport, error) {
	if len(employerIDs) == 0 {
		return domain.CollectionReport{}, fmt.Errorf("at least one employer id is required")
	}

	report := domain.CollectionReport{
		RunID:     uuid.New(),
		Source:    s.source.Name(),
		StartedAt: s.clock(),
	}

	log := s.log.With("run_id", report.RunID.String(), "source", report.Source)
	log.Info("collection started", "employers", len(employerIDs))

	snap, fetches, err := s.source.Collect(ctx, employerIDs)
	if err != nil {
		return domain.CollectionReport{}, fmt.Errorf("collect from %s: %w", report.Source, err)
	}
	report.Fetches = fetches

	if len(snap.Vacancies) > 0 {
		if err := s.repo.UpsertSnapshot(ctx, report.RunID, snap); err != nil {
			return domain.CollectionReport{}, fmt.Errorf("persist snapshot: %w", err)
		}
		report.Stored = len(snap.Vacancies)
	}

	if s.exporter != nil && len(snap.Vacancies) > 0 {
		if err := s.exporter.Export(ctx, snap); err != nil {
			log.Warn("snapshot export failed", "err", err)
		} else {
			report.Exported = true
		}
	}

	report.FinishedAt = s.clock()
	log.Info("collection finished",
		"stored", report.Stored,
		"areas", len(snap.Areas),
		"employers", len(snap.Employers),
		"exported", report.Exported,
	)

	return report, nil
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/starseer/internal/domain"
	"github.com/couchcryptid/starseer/internal/observability"
)

// CatalogExtractor reads every raw record from the catalog.
type CatalogExtractor interface {
	Extract(ctx context.Context) ([]domain.RawRecord, error)
}

// Transformer converts a raw catalog record into a body.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawRecord) (domain.CelestialBody, error)
}

// BatchLoader writes formatted starfile lines to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, lines []string) error
}

// BodyExporter receives every parsed body, including the ones left out of
// the starfile.
type BodyExporter interface {
	ExportBodies(ctx context.Context, bodies []domain.CelestialBody) error
}

// Report summarizes one run. Lines = Parsed + ParseErrors and
// Parsed = Written + Skipped.
type Report struct {
	Lines       int
	Parsed      int
	ParseErrors int
	Written     int
	Skipped     int
	SkippedBy   map[string]int // keyed by missing field
	Duration    time.Duration
}

// Pipeline orchestrates the catalog to starfile batch.
type Pipeline struct {
	extractor   CatalogExtractor
	transformer Transformer
	loader      BatchLoader
	exporter    BodyExporter
	table       *domain.ColorTable
	logger      *slog.Logger
	metrics     *observability.Metrics
	clock       clockwork.Clock
}

// Option configures optional pipeline stages.
type Option func(*Pipeline)

// WithExporter adds a full catalog export after the starfile is written.
func WithExporter(e BodyExporter) Option {
	return func(p *Pipeline) { p.exporter = e }
}

// WithClock replaces the wall clock used to time the run.
func WithClock(c clockwork.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// New creates a Pipeline with the given stages, color table and observability.
func New(e CatalogExtractor, t Transformer, l BatchLoader, table *domain.ColorTable, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		table:       table,
		logger:      logger,
		metrics:     metrics,
		clock:       clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads the whole catalog, parses every record, then formats and loads
// the starfile. Records that fail to parse and bodies missing a starfile
// field are logged, counted and skipped. Any other failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	start := p.clock.Now()
	report := Report{SkippedBy: make(map[string]int)}
	p.metrics.ColorTableEntries.Set(float64(p.table.Len()))

	p.logger.Info("reading catalog")
	raws, err := p.extractor.Extract(ctx)
	if err != nil {
		return report, fmt.Errorf("extract catalog: %w", err)
	}
	report.Lines = len(raws)
	p.metrics.CatalogLines.Add(float64(len(raws)))

	bodies, err := p.parse(ctx, raws, &report)
	if err != nil {
		return report, err
	}
	p.logger.Info("catalog read", "lines", report.Lines, "bodies", report.Parsed, "parse_errors", report.ParseErrors)

	lines, err := p.format(ctx, bodies, &report)
	if err != nil {
		return report, err
	}

	p.logger.Info("writing starfile", "lines", len(lines))
	if err := p.loader.LoadBatch(ctx, lines); err != nil {
		return report, fmt.Errorf("load starfile: %w", err)
	}
	report.Written = len(lines)
	p.metrics.BodiesWritten.Add(float64(len(lines)))
	p.logger.Info("starfile written", "lines", report.Written)

	if p.exporter != nil {
		if err := p.exporter.ExportBodies(ctx, bodies); err != nil {
			return report, fmt.Errorf("export catalog: %w", err)
		}
		p.logger.Info("catalog exported", "bodies", len(bodies))
	}

	report.Duration = p.clock.Since(start)
	p.metrics.RunDurationSeconds.Set(report.Duration.Seconds())
	p.logger.Info("bodies skipped", "count", report.Skipped, "duration", report.Duration)
	return report, nil
}

func (p *Pipeline) parse(ctx context.Context, raws []domain.RawRecord, report *Report) ([]domain.CelestialBody, error) {
	bodies := make([]domain.CelestialBody, 0, len(raws))
	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("record parse failed, skipping line", "line", raw.Line, "error", err)
			report.ParseErrors++
			p.metrics.ParseErrors.Inc()
			continue
		}
		bodies = append(bodies, body)
	}
	report.Parsed = len(bodies)
	p.metrics.BodiesParsed.Add(float64(len(bodies)))
	return bodies, nil
}

func (p *Pipeline) format(ctx context.Context, bodies []domain.CelestialBody, report *Report) ([]string, error) {
	lines := make([]string, 0, len(bodies))
	for _, b := range bodies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := domain.FormatStarLine(b, p.table)
		if err != nil {
			var mf *domain.MissingFieldError
			if !errors.As(err, &mf) {
				return nil, fmt.Errorf("format body %d: %w", b.HarvardID, err)
			}
			p.skip(b, mf, report)
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (p *Pipeline) skip(b domain.CelestialBody, mf *domain.MissingFieldError, report *Report) {
	report.Skipped++
	report.SkippedBy[mf.Field]++
	p.metrics.BodiesSkipped.WithLabelValues(mf.Field).Inc()
	p.logger.Warn("body skipped",
		"harvard_id", b.HarvardID,
		"name", b.DisplayName(),
		"reason", mf.Error(),
	)
	p.logger.Debug("skipped body detail", "harvard_id", b.HarvardID, "summary", b.String())
}

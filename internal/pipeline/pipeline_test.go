package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/starseer/internal/domain"
	"github.com/couchcryptid/starseer/internal/observability"
	"github.com/couchcryptid/starseer/internal/pipeline"
)

// --- mocks ---

type mockExtractor struct {
	records []domain.RawRecord
	err     error
	clock   *clockwork.FakeClock
	elapsed time.Duration
}

func (m *mockExtractor) Extract(_ context.Context) ([]domain.RawRecord, error) {
	if m.clock != nil {
		m.clock.Advance(m.elapsed)
	}
	return m.records, m.err
}

// mockTransformer resolves records by their text.
type mockTransformer struct {
	bodies map[string]domain.CelestialBody
}

func (m *mockTransformer) Transform(_ context.Context, raw domain.RawRecord) (domain.CelestialBody, error) {
	b, ok := m.bodies[raw.Text]
	if !ok {
		return domain.CelestialBody{}, errors.New("unparseable record")
	}
	return b, nil
}

type mockLoader struct {
	lines []string
	err   error
}

func (m *mockLoader) LoadBatch(_ context.Context, lines []string) error {
	if m.err != nil {
		return m.err
	}
	m.lines = append(m.lines, lines...)
	return nil
}

type mockExporter struct {
	bodies []domain.CelestialBody
	err    error
}

func (m *mockExporter) ExportBodies(_ context.Context, bodies []domain.CelestialBody) error {
	m.bodies = bodies
	return m.err
}

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var j2000 = &domain.ArcCoordinate{RAHour: 0, RAMinute: 8, RASecond: 23.3, Sign: "+", DecDegree: 29, DecMinute: 5, DecSecond: 26}

func testTable() *domain.ColorTable {
	return domain.NewColorTable(map[int]domain.RGB{
		12500: {R: 175, G: 199, B: 255},
		15600: {R: 166, G: 192, B: 255},
	})
}

// threeBodies is one complete star, one without B-V and one without a position.
func threeBodies() (*mockExtractor, *mockTransformer) {
	ext := &mockExtractor{records: []domain.RawRecord{
		{Line: 1, Text: "star"},
		{Line: 2, Text: "no-bv"},
		{Line: 3, Text: "no-position"},
	}}
	tfm := &mockTransformer{bodies: map[string]domain.CelestialBody{
		"star": {
			HarvardID: 15, Name: ptr("21Alp And"),
			B1900: j2000, J2000: j2000,
			VisualMagnitude: ptr(2.06), ColorBV: ptr(-0.11),
		},
		"no-bv": {
			HarvardID: 16, Name: ptr("Test"),
			B1900: j2000, J2000: j2000,
			VisualMagnitude: ptr(5.0),
		},
		"no-position": {
			HarvardID: 92, VisualMagnitude: ptr(4.0), ColorBV: ptr(0.0),
		},
	}}
	return ext, tfm
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	ext, tfm := threeBodies()
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, tfm, ldr, testTable(), discardLogger(), metrics)

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, ldr.lines, 1)
	assert.Equal(t, "0:8:23.3 +29:5:26::::(166, 192, 255)::::2.06\n", ldr.lines[0])

	assert.Equal(t, 3, report.Lines)
	assert.Equal(t, 3, report.Parsed)
	assert.Equal(t, 0, report.ParseErrors)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, map[string]int{
		domain.FieldColor: 1,
		domain.FieldJ2000: 1,
	}, report.SkippedBy)

	assert.InDelta(t, 3, testutil.ToFloat64(metrics.CatalogLines), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(metrics.BodiesParsed), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.BodiesWritten), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.BodiesSkipped.WithLabelValues(domain.FieldColor)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.BodiesSkipped.WithLabelValues(domain.FieldJ2000)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.ColorTableEntries), 0)
}

func TestPipeline_Run_ParseErrorsAreCounted(t *testing.T) {
	ext, tfm := threeBodies()
	ext.records = append(ext.records, domain.RawRecord{Line: 4, Text: "garbage"})
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, tfm, &mockLoader{}, testTable(), discardLogger(), metrics)

	report, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, report.Lines)
	assert.Equal(t, 3, report.Parsed)
	assert.Equal(t, 1, report.ParseErrors)
	assert.Equal(t, report.Lines, report.Parsed+report.ParseErrors)
	assert.Equal(t, report.Parsed, report.Written+report.Skipped)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ParseErrors), 0)
}

func TestPipeline_Run_EmptyCatalog(t *testing.T) {
	ldr := &mockLoader{}
	p := pipeline.New(&mockExtractor{}, &mockTransformer{}, ldr, testTable(), discardLogger(), observability.NewMetricsForTesting())

	report, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ldr.lines)
	assert.Zero(t, report.Lines)
	assert.Zero(t, report.Skipped)
}

func TestPipeline_Run_Exporter(t *testing.T) {
	ext, tfm := threeBodies()
	exp := &mockExporter{}

	p := pipeline.New(ext, tfm, &mockLoader{}, testTable(), discardLogger(),
		observability.NewMetricsForTesting(), pipeline.WithExporter(exp))

	_, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, exp.bodies, 3, "skipped bodies are exported too")
	assert.Equal(t, 15, exp.bodies[0].HarvardID)
	assert.Equal(t, 92, exp.bodies[2].HarvardID)
}

func TestPipeline_Run_RecordsDuration(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.March, 1, 22, 0, 0, 0, time.UTC))
	ext, tfm := threeBodies()
	ext.clock = clock
	ext.elapsed = 1500 * time.Millisecond
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(ext, tfm, &mockLoader{}, testTable(), discardLogger(), metrics, pipeline.WithClock(clock))

	report, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, report.Duration)
	assert.InDelta(t, 1.5, testutil.ToFloat64(metrics.RunDurationSeconds), 1e-9)
}

func TestPipeline_Run_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("extract", func(t *testing.T) {
		ldr := &mockLoader{}
		p := pipeline.New(&mockExtractor{err: boom}, &mockTransformer{}, ldr, testTable(), discardLogger(), observability.NewMetricsForTesting())
		_, err := p.Run(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "extract catalog")
		assert.Empty(t, ldr.lines)
	})

	t.Run("load", func(t *testing.T) {
		ext, tfm := threeBodies()
		exp := &mockExporter{}
		p := pipeline.New(ext, tfm, &mockLoader{err: boom}, testTable(), discardLogger(),
			observability.NewMetricsForTesting(), pipeline.WithExporter(exp))
		_, err := p.Run(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "load starfile")
		assert.Nil(t, exp.bodies, "export runs after the starfile")
	})

	t.Run("export", func(t *testing.T) {
		ext, tfm := threeBodies()
		p := pipeline.New(ext, tfm, &mockLoader{}, testTable(), discardLogger(),
			observability.NewMetricsForTesting(), pipeline.WithExporter(&mockExporter{err: boom}))
		_, err := p.Run(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "export catalog")
	})

	t.Run("cancelled", func(t *testing.T) {
		ext, tfm := threeBodies()
		ldr := &mockLoader{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := pipeline.New(ext, tfm, ldr, testTable(), discardLogger(), observability.NewMetricsForTesting())
		_, err := p.Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, ldr.lines)
	})
}

package pipeline_test

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/starseer/internal/domain"
	"github.com/couchcryptid/starseer/internal/observability"
	"github.com/couchcryptid/starseer/internal/pipeline"
)

// readSampleCatalog loads testdata/bsc5_sample.dat as raw records.
func readSampleCatalog(t *testing.T) []domain.RawRecord {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", "bsc5_sample.dat"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	var records []domain.RawRecord
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		records = append(records, domain.RawRecord{Line: n, Text: sc.Text()})
	}
	require.NoError(t, sc.Err())
	return records
}

func TestBodyTransformer_WithSampleCatalog(t *testing.T) {
	records := readSampleCatalog(t)
	require.Len(t, records, 6)

	tfm := pipeline.NewTransformer()

	cases := []struct {
		line      int
		harvardID int
		name      string
		dm        string
		hasJ2000  bool
		vmag      float64
	}{
		{line: 1, harvardID: 1, dm: "BD+44 4550", hasJ2000: true, vmag: 6.70},
		{line: 2, harvardID: 15, name: "21Alp And", dm: "BD+28 4", hasJ2000: true, vmag: 2.06},
		{line: 3, harvardID: 92, name: "Nova Cas"},
		{line: 4, harvardID: 2491, name: "9Alp CMa", dm: "BD-16 1591", hasJ2000: true, vmag: -1.46},
		{line: 5, harvardID: 3000, name: "Xi  Test", hasJ2000: true, vmag: 5.10},
	}

	for _, tc := range cases {
		t.Run(records[tc.line-1].Text[:4], func(t *testing.T) {
			body, err := tfm.Transform(context.Background(), records[tc.line-1])
			require.NoError(t, err)

			assert.Equal(t, tc.harvardID, body.HarvardID)
			assert.Equal(t, tc.name, body.DisplayName())
			if tc.dm != "" {
				require.NotNil(t, body.DurchmusterungID)
				assert.Equal(t, tc.dm, *body.DurchmusterungID)
			}
			assert.Equal(t, tc.hasJ2000, body.J2000 != nil)
			assert.Equal(t, tc.hasJ2000, body.B1900 != nil)
			if tc.vmag != 0 {
				require.NotNil(t, body.VisualMagnitude)
				assert.InDelta(t, tc.vmag, *body.VisualMagnitude, 1e-9)
			}
		})
	}

	t.Run("malformed line", func(t *testing.T) {
		_, err := tfm.Transform(context.Background(), records[5])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 6")
	})
}

func TestPipeline_WithSampleCatalog(t *testing.T) {
	table := domain.NewColorTable(map[int]domain.RGB{
		11100: {R: 181, G: 205, B: 255},
		12500: {R: 175, G: 199, B: 255},
		15600: {R: 166, G: 192, B: 255},
	})
	ldr := &mockLoader{}

	p := pipeline.New(&mockExtractor{records: readSampleCatalog(t)}, pipeline.NewTransformer(), ldr,
		table, discardLogger(), observability.NewMetricsForTesting())

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0:5:9.9 +45:13:45::::(181, 205, 255)::::6.7\n",
		"0:8:23.3 +29:5:26::::(166, 192, 255)::::2.06\n",
		"6:45:8.9 -16:42:58::::(175, 199, 255)::::-1.46\n",
	}, ldr.lines)
	assert.Equal(t, 6, report.Lines)
	assert.Equal(t, 1, report.ParseErrors)
	assert.Equal(t, 2, report.Skipped)
}

func TestPipeline_UnparseablePositionIsSkippedNotDropped(t *testing.T) {
	records := readSampleCatalog(t)
	alpheratz := records[1].Text
	require.Equal(t, "  15", alpheratz[:4])
	records[1].Text = alpheratz[:77] + "xx" + alpheratz[79:]

	table := domain.NewColorTable(map[int]domain.RGB{
		11100: {R: 181, G: 205, B: 255},
		12500: {R: 175, G: 199, B: 255},
		15600: {R: 166, G: 192, B: 255},
	})
	ldr := &mockLoader{}
	exp := &mockExporter{}
	metrics := observability.NewMetricsForTesting()

	p := pipeline.New(&mockExtractor{records: records}, pipeline.NewTransformer(), ldr,
		table, discardLogger(), metrics, pipeline.WithExporter(exp))

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0:5:9.9 +45:13:45::::(181, 205, 255)::::6.7\n",
		"6:45:8.9 -16:42:58::::(175, 199, 255)::::-1.46\n",
	}, ldr.lines)
	assert.Equal(t, 5, report.Parsed)
	assert.Equal(t, 1, report.ParseErrors)
	assert.Equal(t, 3, report.Skipped)
	assert.Equal(t, map[string]int{
		domain.FieldJ2000: 2,
		domain.FieldColor: 1,
	}, report.SkippedBy)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.BodiesSkipped.WithLabelValues(domain.FieldJ2000)), 0)

	require.Len(t, exp.bodies, 5)
	assert.Equal(t, 15, exp.bodies[1].HarvardID)
	assert.Nil(t, exp.bodies[1].J2000)
}

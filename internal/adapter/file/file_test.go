package file

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/starseer/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCatalogReader_Extract(t *testing.T) {
	path := writeFile(t, "bsc5.dat", "   1          BD+44 4550\n  92Nova Cas\r\n   3\n")

	records, err := NewCatalogReader(path, testLogger()).Extract(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, rec := range records {
		assert.Equal(t, i+1, rec.Line)
		assert.Len(t, rec.Text, domain.RecordWidth)
	}
	assert.Equal(t, "  92Nova Cas", records[1].Text[:12])
}

func TestCatalogReader_Extract_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewCatalogReader(filepath.Join(t.TempDir(), "absent.dat"), testLogger()).Extract(context.Background())
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled", func(t *testing.T) {
		path := writeFile(t, "bsc5.dat", "   1\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewCatalogReader(path, testLogger()).Extract(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoadColorTable(t *testing.T) {
	path := writeFile(t, "TempToColor.dat", "# header\n  5000 K   2deg  0.3451 0.3516  1.0000 0.7111 0.4243  255 228 206  #ffe4ce\n")

	table, err := LoadColorTable(path)
	require.NoError(t, err)
	c, ok := table.Lookup(5000)
	require.True(t, ok)
	assert.Equal(t, domain.RGB{R: 255, G: 228, B: 206}, c)

	_, err = LoadColorTable(filepath.Join(t.TempDir(), "absent.dat"))
	require.ErrorIs(t, err, os.ErrNotExist)

	empty := writeFile(t, "empty.dat", "# nothing\n")
	_, err = LoadColorTable(empty)
	require.ErrorIs(t, err, domain.ErrEmptyColorTable)
	assert.Contains(t, err.Error(), empty)
}

func TestStarfileWriter_LoadBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfile.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o600))

	w := NewStarfileWriter(path, testLogger())
	lines := []string{
		"0:8:23.3 +29:5:26::::(166, 192, 255)::::2.06\n",
		"6:45:8.9 -16:42:58::::(175, 199, 255)::::-1.46\n",
	}
	require.NoError(t, w.LoadBatch(context.Background(), lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+lines[1], string(data))
}

func TestStarfileWriter_LoadBatch_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfile.txt")
	require.NoError(t, NewStarfileWriter(path, testLogger()).LoadBatch(context.Background(), nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestStarfileWriter_LoadBatch_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "starfile.txt")
	err := NewStarfileWriter(path, testLogger()).LoadBatch(context.Background(), []string{"x\n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create starfile")
}

func TestReadStarfile(t *testing.T) {
	path := writeFile(t, "starfile.txt",
		"0:8:23.3 +29:5:26::::(166, 192, 255)::::2.06\n"+
			"not a star\n"+
			"6:45:8.9 -16:42:58::::(175, 199, 255)::::-1.46\n")

	stars, skipped, err := ReadStarfile(context.Background(), path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, stars, 2)
	assert.Equal(t, domain.RGB{R: 166, G: 192, B: 255}, stars[0].Color)
	assert.InDelta(t, -1.46, stars[1].VisualMagnitude, 1e-9)
	assert.Equal(t, "-", stars[1].Position.Sign)

	_, _, err = ReadStarfile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), testLogger())
	require.ErrorIs(t, err, os.ErrNotExist)
}

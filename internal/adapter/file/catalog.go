package file

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/starseer/internal/domain"
)

// CatalogReader reads bsc5.dat style catalogs from disk.
// It implements pipeline.CatalogExtractor.
type CatalogReader struct {
	path   string
	logger *slog.Logger
}

// NewCatalogReader creates a reader for the catalog at path.
func NewCatalogReader(path string, logger *slog.Logger) *CatalogReader {
	return &CatalogReader{path: path, logger: logger}
}

// Extract returns every line of the catalog, padded to the record width and
// numbered from 1.
func (r *CatalogReader) Extract(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var records []domain.RawRecord
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, domain.RawRecord{Line: n, Text: domain.PadRecord(sc.Text())})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}
	r.logger.Debug("catalog file read", "path", r.path, "lines", len(records))
	return records, nil
}

// LoadColorTable reads a temperature to color table from path.
func LoadColorTable(path string) (*domain.ColorTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open color table: %w", err)
	}
	defer f.Close()

	table, err := domain.LoadColorTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

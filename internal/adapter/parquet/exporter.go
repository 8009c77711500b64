package parquet

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/couchcryptid/starseer/internal/domain"
)

// writerParallelism is the number of goroutines parquet-go uses to encode
// a row group.
const writerParallelism = 4

// Exporter writes every parsed body with all catalog fields to a Parquet file.
// It implements pipeline.BodyExporter.
type Exporter struct {
	path        string
	compression parquet.CompressionCodec
	logger      *slog.Logger
}

// NewExporter creates an exporter writing to path with the named codec
// (SNAPPY, GZIP or NONE).
func NewExporter(path, compression string, logger *slog.Logger) (*Exporter, error) {
	codec, err := compressionCodec(compression)
	if err != nil {
		return nil, err
	}
	return &Exporter{path: path, compression: codec, logger: logger}, nil
}

// ExportBodies replaces the file at the exporter's path with one row per body.
func (e *Exporter) ExportBodies(ctx context.Context, bodies []domain.CelestialBody) (err error) {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close parquet file: %w", cerr)
		}
	}()

	pw, err := writer.NewParquetWriterFromWriter(f, new(bodyRow), writerParallelism)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = e.compression

	for i := range bodies {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := pw.Write(toRow(bodies[i])); err != nil {
			return fmt.Errorf("write parquet row for body %d: %w", bodies[i].HarvardID, err)
		}
	}

	// parquet-go panics on some encoder failures during WriteStop.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parquet writer panicked during WriteStop: %v", r)
		}
	}()
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finish parquet file: %w", err)
	}
	e.logger.Debug("parquet export written", "path", e.path, "rows", len(bodies))
	return nil
}

func compressionCodec(name string) (parquet.CompressionCodec, error) {
	switch name {
	case "SNAPPY", "":
		return parquet.CompressionCodec_SNAPPY, nil
	case "GZIP":
		return parquet.CompressionCodec_GZIP, nil
	case "NONE":
		return parquet.CompressionCodec_UNCOMPRESSED, nil
	default:
		return 0, fmt.Errorf("unsupported parquet compression %q", name)
	}
}

package file

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/starseer/internal/domain"
)

// StarfileWriter writes starfile lines to disk.
// It implements pipeline.BatchLoader.
type StarfileWriter struct {
	path   string
	logger *slog.Logger
}

// NewStarfileWriter creates a writer for the starfile at path.
func NewStarfileWriter(path string, logger *slog.Logger) *StarfileWriter {
	return &StarfileWriter{path: path, logger: logger}
}

// LoadBatch truncates the starfile and writes lines in order. Each line
// already carries its newline.
func (w *StarfileWriter) LoadBatch(ctx context.Context, lines []string) (err error) {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create starfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close starfile: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write starfile: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write starfile: %w", err)
	}
	w.logger.Debug("starfile flushed", "path", w.path, "lines", len(lines))
	return nil
}

// ReadStarfile parses every line of the starfile at path. Malformed lines
// are logged and counted in skipped rather than failing the read.
func ReadStarfile(ctx context.Context, path string, logger *slog.Logger) (stars []domain.Star, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open starfile: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		star, err := domain.ParseStarLine(sc.Text())
		if err != nil {
			logger.Warn("line skipped", "line", n, "error", err)
			skipped++
			continue
		}
		stars = append(stars, star)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("read starfile %s: %w", path, err)
	}
	return stars, skipped, nil
}

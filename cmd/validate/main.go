// Command validate checks a starfile against the catalog and color table it
// was built from. It verifies that every line parses, that the starfile is
// exactly what the catalog produces, and that every value is in range.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -catalog bsc5.dat \
//	  -table TempToColor.dat \
//	  -starfile starfile.txt
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/couchcryptid/starseer/internal/adapter/file"
	"github.com/couchcryptid/starseer/internal/domain"
)

// Sanity bounds for starfile values. The faintest catalog entries are near
// magnitude 8; the brightest star is Sirius at -1.46.
const (
	minMagnitude = -2.0
	maxMagnitude = 9.0
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	catalog := flag.String("catalog", "bsc5.dat", "path to the Bright Star Catalogue")
	table := flag.String("table", "TempToColor.dat", "path to the temperature to color table")
	starfile := flag.String("starfile", "starfile.txt", "path to the starfile to validate")
	flag.Parse()

	if *catalog == "" || *table == "" || *starfile == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, *catalog, *table, *starfile); code != 0 {
		os.Exit(code)
	}
}

// expected is what the catalog and table say the starfile should hold.
type expected struct {
	catalogLines int
	parseErrors  int
	skipped      int
	lines        []string
}

func run(w io.Writer, catalogPath, tablePath, starfilePath string) int {
	fmt.Fprintln(w, "=== Starfile Integrity Validation ===")
	fmt.Fprintln(w)

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	table, err := file.LoadColorTable(tablePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load color table: %v\n", err)
		return 1
	}

	records, err := file.NewCatalogReader(catalogPath, logger).Extract(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load catalog: %v\n", err)
		return 1
	}

	lines, err := readLines(starfilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load starfile: %v\n", err)
		return 1
	}

	want, err := rebuild(records, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: rebuild starfile: %v\n", err)
		return 1
	}

	stars, syntax := validateSyntax(lines)
	phases := []*phase{
		syntax,
		validateAccounting(lines, want),
		validateRanges(stars),
	}

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintfFunc()

	allPassed := true
	for _, p := range phases {
		status := pass("PASS")
		if !p.passed() {
			status = fail("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Records: %d catalog lines, %d starfile lines, %d skipped bodies, %d parse errors\n",
		want.catalogLines, len(lines), want.skipped, want.parseErrors)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(w, "\nValidation FAILED.")
	return 1
}

// ── Data loading ──

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// rebuild recomputes the starfile from the catalog the same way the build
// does, without writing anything.
func rebuild(records []domain.RawRecord, table *domain.ColorTable) (expected, error) {
	want := expected{catalogLines: len(records)}
	for _, raw := range records {
		body, err := domain.ParseBody(raw.Text)
		if err != nil {
			want.parseErrors++
			continue
		}
		line, err := domain.FormatStarLine(body, table)
		if err != nil {
			var mf *domain.MissingFieldError
			if !errors.As(err, &mf) {
				return expected{}, fmt.Errorf("body %d: %w", body.HarvardID, err)
			}
			want.skipped++
			continue
		}
		want.lines = append(want.lines, strings.TrimSuffix(line, "\n"))
	}
	return want, nil
}

// ── Phase 1: Starfile Syntax ──
// Every line must parse back into a star.

func validateSyntax(lines []string) ([]domain.Star, *phase) {
	p := &phase{name: "Phase 1: Starfile Syntax"}
	stars := make([]domain.Star, 0, len(lines))
	for i, line := range lines {
		star, err := domain.ParseStarLine(line)
		if err != nil {
			p.errorf("line %d: %v", i+1, err)
			continue
		}
		stars = append(stars, star)
	}
	return stars, p
}

// ── Phase 2: Record Accounting ──
// The starfile must match the rebuild line for line.

func validateAccounting(lines []string, want expected) *phase {
	p := &phase{name: "Phase 2: Record Accounting (catalog vs starfile)"}

	if len(lines) != len(want.lines) {
		p.errorf("starfile has %d lines, catalog produces %d", len(lines), len(want.lines))
	}

	for i := 0; i < min(len(lines), len(want.lines)); i++ {
		if lines[i] != want.lines[i] {
			p.errorf("line %d: starfile=%q, catalog=%q", i+1, lines[i], want.lines[i])
		}
	}
	return p
}

// ── Phase 3: Value Ranges ──
// Positions, colors and magnitudes must be physically plausible.

func validateRanges(stars []domain.Star) *phase {
	p := &phase{name: "Phase 3: Value Ranges"}
	for i, s := range stars {
		pos := s.Position
		switch {
		case pos.RAHour < 0 || pos.RAHour > 23:
			p.errorf("star %d: RA hour %d out of range", i+1, pos.RAHour)
		case pos.RAMinute < 0 || pos.RAMinute > 59:
			p.errorf("star %d: RA minute %d out of range", i+1, pos.RAMinute)
		case pos.RASecond < 0 || pos.RASecond >= 60:
			p.errorf("star %d: RA second %v out of range", i+1, pos.RASecond)
		case pos.DecDegree < 0 || pos.DecDegree > 90:
			p.errorf("star %d: DEC degree %d out of range", i+1, pos.DecDegree)
		case pos.DecMinute < 0 || pos.DecMinute > 59 || pos.DecSecond < 0 || pos.DecSecond > 59:
			p.errorf("star %d: DEC %d'%d\" out of range", i+1, pos.DecMinute, pos.DecSecond)
		}

		for _, c := range []int{s.Color.R, s.Color.G, s.Color.B} {
			if c < 0 || c > 255 {
				p.errorf("star %d: color %s out of range", i+1, s.Color)
				break
			}
		}

		if s.VisualMagnitude < minMagnitude || s.VisualMagnitude > maxMagnitude {
			p.errorf("star %d: visual magnitude %v outside [%v, %v]", i+1, s.VisualMagnitude, minMagnitude, maxMagnitude)
		}
	}
	return p
}

package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmptyColorTable is returned when a table source contains no 2deg rows.
var ErrEmptyColorTable = errors.New("color table has no entries")

// colorRowRe matches a 2 degree CIE row: temperature, then the three space
// padded 8-bit RGB fields right before the trailing "#rrggbb".
var colorRowRe = regexp.MustCompile(`(\d?\d{4}) K   2deg.* ([\d ]{2}\d) ([\d ]{2}\d) ([\d ]{2}\d)  #`)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B int
}

// String renders the triple as "(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// ColorTable maps blackbody temperatures in Kelvin to colors. It is built
// once and only read afterwards.
type ColorTable struct {
	entries map[int]RGB
}

// NewColorTable builds a table from an explicit mapping.
func NewColorTable(entries map[int]RGB) *ColorTable {
	t := &ColorTable{entries: make(map[int]RGB, len(entries))}
	for k, v := range entries {
		t.entries[k] = v
	}
	return t
}

// Lookup returns the color for an exact temperature.
func (t *ColorTable) Lookup(kelvin int) (RGB, bool) {
	c, ok := t.entries[kelvin]
	return c, ok
}

// Len returns the number of temperatures in the table.
func (t *ColorTable) Len() int {
	return len(t.entries)
}

// LoadColorTable reads a TempToColor.dat style table. Comment lines and
// lines that are not 2deg rows are ignored; a later row for the same
// temperature replaces an earlier one.
func LoadColorTable(r io.Reader) (*ColorTable, error) {
	t := &ColorTable{entries: make(map[int]RGB)}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		kelvin, c, ok := parseColorRow(line)
		if !ok {
			continue
		}
		t.entries[kelvin] = c
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read color table: %w", err)
	}
	if len(t.entries) == 0 {
		return nil, ErrEmptyColorTable
	}
	return t, nil
}

func parseColorRow(line string) (int, RGB, bool) {
	m := colorRowRe.FindStringSubmatch(line)
	if m == nil {
		return 0, RGB{}, false
	}
	// The pattern guarantees digits, so Atoi cannot fail here.
	kelvin, _ := strconv.Atoi(m[1])
	r, _ := strconv.Atoi(strings.TrimSpace(m[2]))
	g, _ := strconv.Atoi(strings.TrimSpace(m[3]))
	b, _ := strconv.Atoi(strings.TrimSpace(m[4]))
	return kelvin, RGB{R: r, G: g, B: b}, true
}

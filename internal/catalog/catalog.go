// Package catalog loads star catalogs from comma-separated text files.
//
// Each data line is "name,ra_hours,dec_deg,mag". Blank lines and lines whose
// first non-blank character is '#' are ignored. Rows that cannot be parsed
// are skipped and counted rather than failing the whole load.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/litescript/pocket-planetarium/internal/astro"
)

// ErrEmptyCatalog is returned when a source yields no usable stars.
var ErrEmptyCatalog = errors.New("catalog: no stars")

// maxNameLen caps catalog star names, in runes.
const maxNameLen = 63

// ParseResult holds the stars read from a source.
type ParseResult struct {
	Stars   []astro.Star
	Skipped int   // malformed data lines
	Lines   []int // 1-based line numbers of the skipped rows
}

// Parse reads a catalog from r.
func Parse(r io.Reader) (ParseResult, error) {
	var res ParseResult

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimLeft(sc.Text(), " \t")
		if line == "" || line[0] == '#' {
			continue
		}

		star, ok := parseRow(line)
		if !ok {
			res.Skipped++
			res.Lines = append(res.Lines, lineNo)
			continue
		}
		res.Stars = append(res.Stars, star)
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("reading catalog: %w", err)
	}

	if len(res.Stars) == 0 {
		return res, ErrEmptyCatalog
	}
	return res, nil
}

// parseRow parses one data line. Columns past the fourth are ignored.
func parseRow(line string) (astro.Star, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return astro.Star{}, false
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return astro.Star{}, false
	}
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}

	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i+1]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return astro.Star{}, false
		}
		vals[i] = v
	}
	ra, dec, mag := vals[0], vals[1], vals[2]

	if ra < 0 || ra >= 24 || dec < -90 || dec > 90 {
		return astro.Star{}, false
	}

	return astro.Star{Name: name, RAHours: ra, DecDeg: dec, Mag: mag}, true
}

// Load reads a catalog file.
func Load(path string) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// LoadOrDefault reads path, or returns the built-in catalog when path is
// empty.
func LoadOrDefault(path string) (ParseResult, error) {
	if path == "" {
		return ParseResult{Stars: astro.DefaultStarCatalog()}, nil
	}
	return Load(path)
}

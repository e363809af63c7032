// Package catalog loads and validates the celestial object catalog.
//
// A catalog is a CSV stream with exactly six fields per row:
//
//	name, radius, right ascension (deg), declination (deg), magnitude, size
//
// Validation is per-record: a row that fails the field count, a numeric
// parse, or the magnitude range is skipped and counted, never fatal.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Magnitude bounds for a valid record, inclusive on both ends.
const (
	MagnitudeMin = -4.0
	MagnitudeMax = 4.0
)

// fieldCount is the exact number of fields a catalog row must carry.
const fieldCount = 6

// Record is one validated catalog entry describing a celestial object.
type Record struct {
	Name      string
	Radius    float64 // radial distance from the field origin
	RA        float64 // right ascension, degrees
	Dec       float64 // declination, degrees
	Magnitude float64 // apparent magnitude, in [MagnitudeMin, MagnitudeMax]
	Size      float64 // raw size value; display size is Size/10
}

// Stats summarizes a catalog load.
type Stats struct {
	Total   int // rows seen
	Loaded  int // rows that produced a record
	Skipped int // rows filtered out
}

// ErrMissingSource indicates the catalog source could not be opened.
// Callers are expected to report it once and continue with an empty field.
var ErrMissingSource = errors.New("catalog source unavailable")

// ParseRow validates one catalog row. The error describes which check
// failed; callers treating the catalog as a stream should count and skip.
func ParseRow(fields []string) (Record, error) {
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("want %d fields, got %d", fieldCount, len(fields))
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return Record{}, fmt.Errorf("empty name")
	}

	nums := make([]float64, fieldCount-1)
	labels := [...]string{"radius", "ra", "dec", "magnitude", "size"}
	for i := 1; i < fieldCount; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return Record{}, fmt.Errorf("field %s: %w", labels[i-1], err)
		}
		nums[i-1] = v
	}

	rec := Record{
		Name:      name,
		Radius:    nums[0],
		RA:        nums[1],
		Dec:       nums[2],
		Magnitude: nums[3],
		Size:      nums[4],
	}

	if rec.Magnitude < MagnitudeMin || rec.Magnitude > MagnitudeMax {
		return Record{}, fmt.Errorf("magnitude %v outside [%v, %v]",
			rec.Magnitude, MagnitudeMin, MagnitudeMax)
	}

	return rec, nil
}

// Load reads catalog rows from r, filtering invalid rows per-record.
// It never returns an error for malformed rows; Stats reports the split.
func Load(r io.Reader) ([]Record, Stats) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is validated per row
	cr.TrimLeadingSpace = true

	var records []Record
	var stats Stats

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Unreadable row: count it and move on.
			stats.Total++
			stats.Skipped++
			continue
		}

		stats.Total++
		rec, err := ParseRow(fields)
		if err != nil {
			stats.Skipped++
			continue
		}

		records = append(records, rec)
		stats.Loaded++
	}

	return records, stats
}

// LoadFile loads a catalog from disk. A missing or unreadable file returns
// ErrMissingSource (wrapped); row-level problems are filtered as in Load.
func LoadFile(path string) ([]Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %v", ErrMissingSource, err)
	}
	defer f.Close()

	records, stats := Load(f)
	return records, stats, nil
}

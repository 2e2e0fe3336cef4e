// Package dataset loads spatial instances from CSV into a core.Arena.
//
// Expected layout, with a mandatory header:
//
//	feature,x,y
//	pharmacy,12.5,33.0
//	bus_stop,14.0,31.2
//
// The feature column is an opaque tag; x and y are float64 coordinates.
// Blank lines are skipped by the CSV reader; any other shape fails with a
// wrapped sentinel naming the offending line.
//
// Errors (sentinel):
//
//	ErrBadHeader - the header row is not exactly "feature,x,y".
//	ErrBadRecord - a data row has the wrong arity or a non-numeric
//	               coordinate (wrapped with the line number).
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/colomine/core"
)

// Sentinel errors for dataset loading.
var (
	// ErrBadHeader indicates the CSV header row is not "feature,x,y".
	ErrBadHeader = errors.New("dataset: header must be feature,x,y")

	// ErrBadRecord indicates a malformed data row.
	ErrBadRecord = errors.New("dataset: malformed record")
)

// Load reads the CSV file at path and returns the populated arena.
// InstanceIDs follow file order, so loading is deterministic.
func Load(path string) (*core.Arena, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses CSV instance records from r into a fresh arena.
func Read(r io.Reader) (*core.Arena, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	// 1) Header.
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrBadHeader
		}

		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	if header[0] != "feature" || header[1] != "x" || header[2] != "y" {
		return nil, fmt.Errorf("%w: got %v", ErrBadHeader, header)
	}

	// 2) Records.
	arena := core.NewArena(0)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}

		x, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: x %q", ErrBadRecord, line, rec[1])
		}
		y, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: y %q", ErrBadRecord, line, rec[2])
		}
		if _, err = arena.Add(core.FeatureType(rec[0]), x, y); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
	}

	return arena, nil
}

package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// CSVOptions controls how delimited input is mapped onto a Frame.
type CSVOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// Numeric lists columns to parse as FloatColumn. Empty or unparseable
	// cells become missing entries rather than errors.
	Numeric []string
	// MissingTokens are cell values treated as missing in addition to the
	// empty string (e.g. "NA", "NaN").
	MissingTokens []string
}

// ReadCSV reads a header-first delimited stream into a Frame.
//
// Columns named in opts.Numeric are parsed as numeric with explicit missing
// masks; all other columns are kept as categorical strings.
func ReadCSV(r io.Reader, opts CSVOptions) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty input")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	numeric := make(map[string]bool, len(opts.Numeric))
	for _, name := range opts.Numeric {
		numeric[name] = true
	}
	missingTok := make(map[string]bool, len(opts.MissingTokens)+1)
	missingTok[""] = true
	for _, tok := range opts.MissingTokens {
		missingTok[tok] = true
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+2, err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d: got %d fields, want %d", len(rows)+2, len(rec), len(header))
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}

	f := New(len(rows))
	for j, name := range header {
		if numeric[name] {
			col := NewFloatColumn(len(rows))
			for i, row := range rows {
				v := strings.TrimSpace(row[j])
				if missingTok[v] {
					continue
				}
				x, err := strconv.ParseFloat(v, 64)
				if err != nil {
					continue // unparseable numeric cell stays missing
				}
				col.Set(i, x)
			}
			if err := f.AddFloat(name, col); err != nil {
				return nil, err
			}
			continue
		}
		col := NewStringColumn(len(rows))
		for i, row := range rows {
			v := strings.TrimSpace(row[j])
			if missingTok[v] {
				continue
			}
			col.Set(i, v)
		}
		if err := f.AddString(name, col); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// OpenCSV reads a CSV file into a Frame. Files ending in ".gz" are
// transparently decompressed.
func OpenCSV(path string, opts CSVOptions) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadCSV(r, opts)
}

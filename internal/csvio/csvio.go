// Package csvio reads CSV files as sequences of column->value rows.
// Cells are coerced on the way in: empty strings become nil, strings that
// parse as finite numbers become float64, everything else stays a string.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	MaxPageSize = 1000
	sampleSize  = 5
)

var ErrNotFound = errors.New("csv file not found")

type Row map[string]interface{}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalRows  int  `json:"totalRows"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
	StartRow   int  `json:"startRow"`
	EndRow     int  `json:"endRow"`
}

type PageResult struct {
	Rows       []Row      `json:"rows"`
	Pagination Pagination `json:"pagination"`
}

type FileInfo struct {
	FileName     string    `json:"fileName"`
	FileSize     int64     `json:"fileSize"`
	RowCount     int       `json:"rowCount"`
	ColumnCount  int       `json:"columnCount"`
	Headers      []string  `json:"headers"`
	LastModified time.Time `json:"lastModified"`
}

type ColumnStats struct {
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	NullCount    int           `json:"nullCount"`
	SampleValues []interface{} `json:"sampleValues"`
}

type FileStats struct {
	FileInfo
	Columns []ColumnStats `json:"columns"`
}

// ReadAll streams the whole file and returns every row plus the header
// order from the first line.
func ReadAll(path string) ([]Row, []string, error) {
	var rows []Row
	headers, err := scan(path, func(row Row) {
		rows = append(rows, row)
	})
	if err != nil {
		return nil, nil, err
	}
	return rows, headers, nil
}

// ReadColumns returns every row filtered to the named columns. Names that
// do not exist in the file are simply absent from the result rows.
func ReadColumns(path string, columns []string) ([]Row, error) {
	wanted := make(map[string]bool, len(columns))
	for _, c := range columns {
		wanted[c] = true
	}

	var rows []Row
	_, err := scan(path, func(row Row) {
		filtered := make(Row, len(columns))
		for name, value := range row {
			if wanted[name] {
				filtered[name] = value
			}
		}
		rows = append(rows, filtered)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadPage streams the full file once, counting every row and collecting
// only those inside the requested window. Pagination rows are 1-based.
func ReadPage(path string, page, limit int) (*PageResult, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}
	if limit < 1 || limit > MaxPageSize {
		return nil, fmt.Errorf("limit must be between 1 and %d, got %d", MaxPageSize, limit)
	}

	offset := (page - 1) * limit
	total := 0
	rows := []Row{}
	_, err := scan(path, func(row Row) {
		if total >= offset && total < offset+limit {
			rows = append(rows, row)
		}
		total++
	})
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	startRow, endRow := 0, 0
	if offset < total {
		startRow = offset + 1
		endRow = offset + len(rows)
	}

	return &PageResult{
		Rows: rows,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			TotalRows:  total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1 && total > 0,
			StartRow:   startRow,
			EndRow:     endRow,
		},
	}, nil
}

// Info makes one full pass and combines filesystem stats with row and
// column counts from the parse.
func Info(path string) (*FileInfo, error) {
	fi, err := statCSV(path)
	if err != nil {
		return nil, err
	}

	rowCount := 0
	headers, err := scan(path, func(Row) {
		rowCount++
	})
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		FileName:     filepath.Base(path),
		FileSize:     fi.Size(),
		RowCount:     rowCount,
		ColumnCount:  len(headers),
		Headers:      headers,
		LastModified: fi.ModTime(),
	}, nil
}

// Stats extends Info with per-column inferred type, null count and up to
// five sample values.
func Stats(path string) (*FileStats, error) {
	info, err := Info(path)
	if err != nil {
		return nil, err
	}

	nullCounts := make(map[string]int, len(info.Headers))
	numeric := make(map[string]bool, len(info.Headers))
	seen := make(map[string]bool, len(info.Headers))
	samples := make(map[string][]interface{}, len(info.Headers))

	_, err = scan(path, func(row Row) {
		for _, name := range info.Headers {
			value, ok := row[name]
			if !ok || value == nil {
				nullCounts[name]++
				continue
			}
			_, isNumber := value.(float64)
			if !seen[name] {
				numeric[name] = isNumber
				seen[name] = true
			} else if !isNumber {
				numeric[name] = false
			}
			if len(samples[name]) < sampleSize {
				samples[name] = append(samples[name], value)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	columns := make([]ColumnStats, 0, len(info.Headers))
	for _, name := range info.Headers {
		colType := "string"
		if seen[name] && numeric[name] {
			colType = "number"
		}
		sample := samples[name]
		if sample == nil {
			sample = []interface{}{}
		}
		columns = append(columns, ColumnStats{
			Name:         name,
			Type:         colType,
			NullCount:    nullCounts[name],
			SampleValues: sample,
		})
	}

	return &FileStats{FileInfo: *info, Columns: columns}, nil
}

func statCSV(path string) (os.FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}
	return fi, nil
}

// scan streams the file row by row, invoking fn per data row, and returns
// the header line.
func scan(path string, fn func(Row)) ([]string, error) {
	if _, err := statCSV(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		row := make(Row, len(headers))
		for i, name := range headers {
			if i < len(record) {
				row[name] = coerce(record[i])
			} else {
				row[name] = nil
			}
		}
		fn(row)
	}

	return headers, nil
}

func coerce(cell string) interface{} {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return n
	}
	return cell
}

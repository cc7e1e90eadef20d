package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/internal/options"
)

// ReadConfig controls how tabular input is turned into samples.
type ReadConfig struct {
	// Comma is the CSV field delimiter.
	Comma rune
	// Sheet is the XLSX worksheet to read. Empty selects the first sheet.
	Sheet string
	// XColumn and YColumn are the zero-based columns holding x and y.
	XColumn int
	YColumn int
}

func defaultReadConfig() ReadConfig {
	return ReadConfig{
		Comma:   ',',
		XColumn: 0,
		YColumn: 1,
	}
}

// ReadOption is a functional option for ReadConfig.
type ReadOption = options.Option[*ReadConfig]

// WithComma sets the CSV field delimiter.
func WithComma(comma rune) ReadOption {
	return options.New(func(cfg *ReadConfig) error {
		if comma == '\r' || comma == '\n' || comma == '"' || comma == 0 {
			return fmt.Errorf("%w: invalid CSV delimiter %q", errs.ErrInvalidInput, comma)
		}
		cfg.Comma = comma

		return nil
	})
}

// WithSheet selects the XLSX worksheet by name.
func WithSheet(name string) ReadOption {
	return options.NoError(func(cfg *ReadConfig) {
		cfg.Sheet = name
	})
}

// WithColumns selects which zero-based columns hold x and y.
func WithColumns(xColumn, yColumn int) ReadOption {
	return options.New(func(cfg *ReadConfig) error {
		if xColumn < 0 || yColumn < 0 {
			return fmt.Errorf("%w: negative column index (%d, %d)", errs.ErrInvalidInput, xColumn, yColumn)
		}
		cfg.XColumn = xColumn
		cfg.YColumn = yColumn

		return nil
	})
}

// ReadFile reads samples from the file at path.
//
// Files ending in .xlsx or .xlsm are read as workbooks, everything else as CSV.
func ReadFile(path string, opts ...ReadOption) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadExcel(f, opts...)
	default:
		return ReadCSV(f, opts...)
	}
}

// ReadCSV reads samples from CSV input.
//
// Rows whose selected cells do not both parse as finite numbers are skipped. Returns
// errs.ErrInsufficientData when no row survives.
func ReadCSV(r io.Reader, opts ...ReadOption) ([]Sample, error) {
	cfg := defaultReadConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	var samples []Sample
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		if s, ok := parseRow(record, cfg); ok {
			samples = append(samples, s)
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no numeric rows in CSV input", errs.ErrInsufficientData)
	}

	return samples, nil
}

// ReadExcel reads samples from an XLSX workbook.
//
// The first worksheet is used unless WithSheet names another one. Rows are filtered the
// same way as ReadCSV.
func ReadExcel(r io.Reader, opts ...ReadOption) ([]Sample, error) {
	cfg := defaultReadConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("%w: workbook has no sheets", errs.ErrInsufficientData)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	samples := make([]Sample, 0, len(rows))
	for _, row := range rows {
		if s, ok := parseRow(row, cfg); ok {
			samples = append(samples, s)
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no numeric rows in sheet %q", errs.ErrInsufficientData, sheet)
	}

	return samples, nil
}

// parseRow extracts the configured x and y cells from a row.
func parseRow(row []string, cfg ReadConfig) (Sample, bool) {
	if cfg.XColumn >= len(row) || cfg.YColumn >= len(row) {
		return Sample{}, false
	}

	x, ok := parseCell(row[cfg.XColumn])
	if !ok {
		return Sample{}, false
	}
	y, ok := parseCell(row[cfg.YColumn])
	if !ok {
		return Sample{}, false
	}

	return Sample{X: x, Y: y}, true
}

func parseCell(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}

	return v, true
}

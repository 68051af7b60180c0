package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ColumnData is the raw output of a file read: one string column per header,
// in header order, before any dichotomization.
type ColumnData struct {
	Headers []string
	Columns map[string][]string
}

// DataReader reads Excel and CSV files into per-column samples
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadColumns reads the file into named columns
func (r *DataReader) ReadColumns() (*ColumnData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcel reads Sheet1 into columns
func (r *DataReader) readExcel() (*ColumnData, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	log.Printf("[DataReader] read %d rows from %s", len(rows), r.filePath)

	return r.processRows(rows)
}

// readCSV reads comma-separated data into columns
func (r *DataReader) readCSV() (*ColumnData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] read %d rows from %s", len(rows), r.filePath)

	return r.processRows(rows)
}

func (r *DataReader) processRows(rows [][]string) (*ColumnData, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	columns := make(map[string][]string, len(headers))
	for _, row := range rows[1:] {
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			columns[header] = append(columns[header], value)
		}
	}

	kept := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			kept = append(kept, h)
		}
	}
	return &ColumnData{Headers: kept, Columns: columns}, nil
}

// NumericColumn attempts to parse a column as floats, skipping blanks.
// It reports false when any non-blank cell fails to parse.
func NumericColumn(values []string) ([]float64, bool) {
	parsed := make([]float64, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		parsed = append(parsed, f)
	}
	return parsed, len(parsed) > 0
}

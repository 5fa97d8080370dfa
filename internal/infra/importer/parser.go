package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format, use CSV or Excel")

// Table is a parsed tabular file. Column names are lower-cased and trimmed;
// rows preserve file order.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Parser reads delimited-text (.csv) and spreadsheet (.xlsx/.xls) uploads.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(filename string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(data)
	case ".xlsx", ".xls":
		return parseExcel(data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func parseCSV(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	table := &Table{Columns: normalizeColumns(header)}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		table.Rows = append(table.Rows, rowToMap(table.Columns, record))
	}

	return table, nil
}

func parseExcel(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("spreadsheet is empty")
	}

	table := &Table{Columns: normalizeColumns(rows[0])}
	for _, record := range rows[1:] {
		table.Rows = append(table.Rows, rowToMap(table.Columns, record))
	}

	return table, nil
}

func normalizeColumns(header []string) []string {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return cols
}

func rowToMap(columns, record []string) map[string]string {
	row := make(map[string]string, len(columns))
	for i, col := range columns {
		// Trailing cells may be absent, notably in xlsx exports.
		if i < len(record) {
			row[col] = strings.TrimSpace(record[i])
		} else {
			row[col] = ""
		}
	}
	return row
}

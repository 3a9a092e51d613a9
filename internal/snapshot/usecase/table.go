package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const extXLSX = ".xlsx"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeTable returns the rows of a CSV or XLSX table, header first.
// Workbooks are read from their first sheet.
func decodeTable(location string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(location)) {
	case extXLSX:
		return decodeXLSX(data)
	default:
		return decodeCSV(data)
	}
}

func decodeCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("table is empty")
	}
	return rows, nil
}

func decodeXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}
	return rows, nil
}

// Package spreadsheet reads the first worksheet of uploaded .csv and .xlsx
// catalog files.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

var _ ports.SpreadsheetDecoder = Decoder{}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Decoder struct{}

func NewDecoder() Decoder {
	return Decoder{}
}

// Decode picks the reader by file extension. The first row is the header.
func (d Decoder) Decode(filename string, data []byte) (services.Sheet, error) {
	var rows [][]string
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xlsx":
		rows, err = readXLSX(data)
	default:
		return services.Sheet{}, errs.NewValueIsInvalidErrorWithCause("file extension", fmt.Errorf("%q is not .csv or .xlsx", ext))
	}
	if err != nil {
		return services.Sheet{}, errs.NewValueIsInvalidErrorWithCause("spreadsheet", err)
	}

	if len(rows) == 0 {
		return services.Sheet{}, nil
	}
	return services.Sheet{Headers: rows[0], Rows: rows[1:]}, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}

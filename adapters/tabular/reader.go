package tabular

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"autocsv/domain/core"
	"autocsv/domain/dataset"
	"autocsv/internal"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// encodingAttempt is one entry in the ordered fallback list. A nil
// decoder means the bytes are used as-is after UTF-8 validation.
type encodingAttempt struct {
	name    string
	decoder *encoding.Decoder
}

// encodings is the fixed fallback order. ISO-8859-1 accepts any byte
// sequence, so the terminal failure mode is CSV structure, not text
// decoding.
func encodings() []encodingAttempt {
	return []encodingAttempt{
		{name: "utf-8"},
		{name: "iso-8859-1", decoder: charmap.ISO8859_1.NewDecoder()},
		{name: "windows-1252", decoder: charmap.Windows1252.NewDecoder()},
	}
}

// DataReader loads CSV and XLSX files into typed tables
type DataReader struct {
	log *internal.Logger
}

// NewDataReader creates a reader for CSV and XLSX input
func NewDataReader(log *internal.Logger) *DataReader {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &DataReader{log: log}
}

// Read loads the file at path into a typed table. The format is chosen
// by extension; anything that is not .xlsx is treated as CSV.
func (r *DataReader) Read(ctx context.Context, path string) (*dataset.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrFileNotFound, path)
		}
		return nil, core.NewLoadError(path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return r.readExcel(path)
	default:
		return r.readCSV(path)
	}
}

// readCSV reads the raw bytes once and tries each encoding in order.
// The first decode whose CSV structure parses wins.
func (r *DataReader) readCSV(path string) (*dataset.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewLoadError(path, err)
	}

	var lastErr error
	for _, enc := range encodings() {
		text, ok := decode(raw, enc)
		if !ok {
			r.log.Debug("encoding %s rejected for %s", enc.name, path)
			continue
		}

		records, err := parseCSV(text)
		if err != nil {
			r.log.Debug("encoding %s decoded but CSV parse failed for %s: %v", enc.name, path, err)
			lastErr = err
			continue
		}

		r.log.Info("loaded %s as %s (%d data rows)", path, enc.name, len(records)-1)
		return tableFromRecords(path, records)
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %s: last error: %v", core.ErrNoEncodingMatched, path, lastErr)
	}
	return nil, fmt.Errorf("%w: %s", core.ErrNoEncodingMatched, path)
}

// readExcel reads the first sheet, first row as header.
func (r *DataReader) readExcel(path string) (*dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewLoadError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: workbook has no sheets", core.ErrLoad, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewLoadError(path, err)
	}

	// excelize drops trailing empty cells; pad every row to the header width
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			for len(row) < width {
				row = append(row, "")
			}
			rows[i] = row[:width]
		}
	}

	r.log.Info("loaded %s sheet %q (%d rows)", path, sheets[0], len(rows))
	return tableFromRecords(path, rows)
}

func decode(raw []byte, enc encodingAttempt) (string, bool) {
	data := bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if enc.decoder == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	out, err := enc.decoder.Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func parseCSV(text string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	// FieldsPerRecord defaults to the header width, which is exactly the
	// structural check the encoding fallback relies on
	return reader.ReadAll()
}

func tableFromRecords(path string, records [][]string) (*dataset.Table, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s", core.ErrEmptyTable, path)
	}
	return dataset.NewTable(path, records[0], records[1:])
}

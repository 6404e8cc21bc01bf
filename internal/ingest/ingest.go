// Package ingest turns uploaded spreadsheets into staged client rows.
// It reads CSV and Excel sources, resolves which columns feed the
// promoted fields by header keywords, and preserves the full original
// row as the record's extra data.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BasharMawase/Nextis-Admin/pkg/phone"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// ParseFile reads one spreadsheet from disk and stages its rows for
// insertion. The file type is decided by extension: .csv, .xlsx and
// .xls are supported, anything else returns ErrUnsupportedFile.
func ParseFile(path string) ([]types.NewClient, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xls":
		rows, err = readExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedFile, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return stageRows(rows)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return rows, nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	// First sheet only, like the spreadsheet tools the uploads come from.
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading workbook rows: %w", err)
	}
	return rows, nil
}

// stageRows maps the header row onto the promoted columns and builds
// one staged client per data row. The full row is serialized into the
// extra-data object under the resolved column names, before any phone
// or city normalization, so nothing from the source is lost.
func stageRows(rows [][]string) ([]types.NewClient, error) {
	if len(rows) == 0 {
		return []types.NewClient{}, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	mapped := mapColumns(headers)

	out := make([]types.NewClient, 0, len(rows)-1)
	for _, row := range rows[1:] {
		promoted := map[string]string{}
		full := make(map[string]string, len(headers))

		for i, header := range headers {
			if header == "" {
				continue
			}
			var value string
			if i < len(row) {
				value = row[i]
			}
			key := header
			if target, ok := mapped[i]; ok {
				key = target
				promoted[target] = value
			}
			full[key] = value
		}

		extra, err := json.Marshal(full)
		if err != nil {
			return nil, fmt.Errorf("marshaling row data: %w", err)
		}

		nc := types.NewClient{
			BusinessName: fieldOrUnset(promoted, types.FieldBusinessName),
			Location:     NormalizeCity(fieldOrUnset(promoted, types.FieldLocation)),
			Phone:        phone.Format(fieldOrUnset(promoted, types.FieldPhone)),
			AnyDesk:      fieldOrUnset(promoted, types.FieldAnyDesk),
			ExtraData:    string(extra),
		}
		out = append(out, nc)
	}
	return out, nil
}

// fieldOrUnset returns the promoted value, or the unset marker when the
// source had no column for it.
func fieldOrUnset(promoted map[string]string, key string) string {
	if v, ok := promoted[key]; ok {
		return v
	}
	return phone.Unset
}

package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFileCSV(t *testing.T) {
	path := writeTempCSV(t,
		"שם העסק,עיר,טלפון,הערות\n"+
			"מוסך רמי,חיפה,0501234567,לקוח ותיק\n"+
			"מאפיית הכפר,באקה,029999999,\n")

	rows, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "מוסך רמי", first.BusinessName)
	assert.Equal(t, "חיפה", first.Location)
	assert.Equal(t, "050-1234567", first.Phone)
	assert.Equal(t, "אין", first.AnyDesk)

	// The full source row survives in the extra data, pre-normalization.
	extra := types.Record{types.FieldExtraData: first.ExtraData}.ExtraFields()
	assert.Equal(t, map[string]string{
		"business_name": "מוסך רמי",
		"location":      "חיפה",
		"phone":         "0501234567",
		"הערות":         "לקוח ותיק",
	}, extra)

	// City normalization applies to the promoted column only.
	second := rows[1]
	assert.Equal(t, "באקה אל גרבייה", second.Location)
	assert.Equal(t, "באקה", types.Record{types.FieldExtraData: second.ExtraData}.ExtraFields()["location"])
}

func TestParseFileMissingColumns(t *testing.T) {
	path := writeTempCSV(t, "הערות\nשורה בלי כלום\n")

	rows, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "אין", rows[0].BusinessName)
	assert.Equal(t, "אין", rows[0].Location)
	assert.Equal(t, "אין", rows[0].Phone)
	assert.Equal(t, "אין", rows[0].AnyDesk)
}

func TestParseFileShortRows(t *testing.T) {
	path := writeTempCSV(t, "שם,עיר\nעסק\n")

	rows, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "עסק", rows[0].BusinessName)
	assert.Equal(t, "", rows[0].Location)
}

func TestParseFileHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "שם,עיר\n")

	rows, err := ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upload.xlsx")

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]any{"Business", "City", "Phone"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]any{"Garage North", "עכו", "0523334444"}))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	rows, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Garage North", rows[0].BusinessName)
	assert.Equal(t, "עכו", rows[0].Location)
	assert.Equal(t, "052-3334444", rows[0].Phone)
}

func TestParseFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	_, err := ParseFile(path)
	assert.ErrorIs(t, err, types.ErrUnsupportedFile)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

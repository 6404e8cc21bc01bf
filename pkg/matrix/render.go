package matrix

import (
	"strings"

	"github.com/BasharMawase/Nextis-Admin/pkg/phone"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// Placeholder is the cell text substituted for empty values.
const Placeholder = "-"

// headerLabels maps well-known column identifiers to their display
// labels. Unknown columns show their raw identifier.
var headerLabels = map[string]string{
	types.FieldBusinessName: "שם העסק",
	types.FieldLocation:     "עיר",
	types.FieldPhone:        "מספר טלפון",
	types.FieldAnyDesk:      "AnyDesk",
	types.FieldSourceFile:   "קובץ מקור",
}

// phoneTokens identify phone-like columns by case-insensitive substring
// match, one token per supported language.
var phoneTokens = []string{"phone", "טלפון"}

// HeaderCell is one rendered header entry. Column keeps the raw
// identifier for tooltip display alongside the human-readable label.
type HeaderCell struct {
	Label  string
	Column string
}

// Table is a rendered header/body pair. Row i renders the i-th input
// record; callers resolve a selected row back to its originating record
// by index.
type Table struct {
	Header []HeaderCell
	Rows   [][]string
}

// Empty reports whether the table has no rows. Callers show a no-data
// state rather than an empty shell.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// IsPhoneColumn reports whether a column holds phone numbers: either the
// canonical phone field or any identifier containing a phone token.
func IsPhoneColumn(col string) bool {
	if col == types.FieldPhone {
		return true
	}
	lower := strings.ToLower(col)
	for _, tok := range phoneTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// HeaderLabel returns the display label for a column identifier.
func HeaderLabel(col string) string {
	if label, ok := headerLabels[col]; ok {
		return label
	}
	return col
}

// Render produces the header/body pair for the given records under the
// given schema. Phone-like cells are normalized for display; other empty
// cells show the placeholder. Row order mirrors the input exactly; the
// renderer never sorts or filters.
func Render(records []types.Record, schema []string) Table {
	var t Table

	if len(records) == 0 {
		return t
	}

	t.Header = make([]HeaderCell, len(schema))
	for i, col := range schema {
		t.Header[i] = HeaderCell{Label: HeaderLabel(col), Column: col}
	}

	t.Rows = make([][]string, len(records))
	for i, r := range records {
		row := make([]string, len(schema))
		for j, col := range schema {
			row[j] = renderCell(r, col)
		}
		t.Rows[i] = row
	}
	return t
}

func renderCell(r types.Record, col string) string {
	v := r.StringField(col)
	if IsPhoneColumn(col) {
		return phone.Format(v)
	}
	if v == "" {
		return Placeholder
	}
	return v
}

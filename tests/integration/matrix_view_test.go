package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BasharMawase/Nextis-Admin/pkg/matrix"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
	"github.com/BasharMawase/Nextis-Admin/pkg/view"
)

// apiPageFetcher drives view.Paginator against the live API the way the
// dashboard's table does.
type apiPageFetcher struct {
	baseURL string
}

func (f *apiPageFetcher) FetchPage(ctx context.Context, page, limit int) (types.PageResult, error) {
	url := fmt.Sprintf("%s/api/clients/all?page=%d&limit=%d", f.baseURL, page, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.PageResult{}, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return types.PageResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.PageResult{}, err
	}
	var out types.PageResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return types.PageResult{}, err
	}
	return out, nil
}

func TestMatrixOverAPI(t *testing.T) {
	ts := newAPI(t)

	csv := "שם העסק,עיר,טלפון,איש קשר\n"
	for i := 0; i < 5; i++ {
		csv += fmt.Sprintf("עסק %d,חיפה,050111222%d,יוסי\n", i, i)
	}
	resp := postMultipart(t, ts.URL, map[string]string{"רשימה.csv": csv})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	fetcher := &apiPageFetcher{baseURL: ts.URL}
	p := view.NewPaginator(fetcher, 2)

	page, err := p.GoTo(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.PrevDisabled())
	assert.False(t, p.NextDisabled())

	// Schema inference over the merged records puts the promoted
	// columns first and the dynamic spreadsheet column after them.
	schema := matrix.DefaultSchema(page.Data)
	require.NotEmpty(t, schema)
	assert.Equal(t, types.FieldBusinessName, schema[0])
	assert.Contains(t, schema, "איש קשר")

	table := matrix.Render(page.Data, schema)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "שם העסק", table.Header[0].Label)

	// Phone cells pass through the formatter even though the source
	// held raw digits.
	phoneCol := -1
	for i, cell := range table.Header {
		if matrix.IsPhoneColumn(cell.Column) {
			phoneCol = i
		}
	}
	require.GreaterOrEqual(t, phoneCol, 0)
	assert.Regexp(t, `^05\d-\d{7}$`, table.Rows[0][phoneCol])

	page, err = p.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, p.Current())
	require.Len(t, page.Data, 2)

	_, err = p.GoTo(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, p.NextDisabled())
}

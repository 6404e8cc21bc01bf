package view

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BasharMawase/Nextis-Admin/pkg/phone"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

func TestPartitionCoreAndExtended(t *testing.T) {
	rec := types.Record{
		types.FieldID:           int64(4),
		types.FieldBusinessName: "מסעדת השף",
		types.FieldAnyDesk:      "999888777",
	}
	fields := []types.DetailField{
		{Field: types.FieldLocation, Value: "חיפה"},
		{Field: types.FieldPhone, Value: "972501234567"},
		{Field: types.FieldBusinessName, Value: "מסעדת השף"},
		{Field: types.FieldCreatedAt, Value: "2024-05-01"},
		{Field: types.FieldExtraData, Value: `{"a":1}`},
		{Field: "בעלים", Value: "יוסי"},
		{Field: "הערות", Value: ""},
	}

	d := Partition(rec, fields)

	assert.Equal(t, "מסעדת השף", d.Name)
	require.Len(t, d.Core, len(CoreFields))

	byKey := make(map[string]CoreField)
	for _, c := range d.Core {
		byKey[c.Key] = c
	}
	assert.Equal(t, "חיפה", byKey[types.FieldLocation].Value)
	// Core phone values are display-normalized.
	assert.Equal(t, "050-1234567", byKey[types.FieldPhone].Value)
	// Aggregation missed anydesk; the originating record fills it in.
	assert.Equal(t, "999888777", byKey[types.FieldAnyDesk].Value)
	// Nothing knows the source file; placeholder shows instead.
	assert.Equal(t, "-", byKey[types.FieldSourceFile].Value)

	// Extended keeps only non-core, non-system, non-empty entries.
	require.Len(t, d.Extended, 1)
	assert.Equal(t, "בעלים", d.Extended[0].Field)
	assert.Equal(t, "יוסי", d.Extended[0].Value)
}

func TestPartitionUnknownName(t *testing.T) {
	d := Partition(types.Record{}, nil)
	assert.Equal(t, "לא ידוע", d.Name)
}

// fakeDetailFetcher serves canned detail fields, optionally blocking
// until released.
type fakeDetailFetcher struct {
	fields  []types.DetailField
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeDetailFetcher) FetchDetails(ctx context.Context, _ int64) ([]types.DetailField, error) {
	if f.block != nil {
		close(f.started)
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.fields, f.err
}

// updateSink collects delivered detail updates.
type updateSink struct {
	mu      sync.Mutex
	updates []DetailUpdate
}

func (s *updateSink) deliver(u DetailUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, u)
}

func (s *updateSink) all() []DetailUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DetailUpdate(nil), s.updates...)
}

func TestDetailViewLoadingThenReady(t *testing.T) {
	fetcher := &fakeDetailFetcher{
		fields: []types.DetailField{{Field: types.FieldLocation, Value: "אשדוד"}},
	}
	sink := &updateSink{}
	v := NewDetailView(fetcher, sink.deliver)
	defer v.Close()

	v.Open(context.Background(), types.Record{types.FieldID: int64(1), types.FieldBusinessName: "חנות"})

	require.Eventually(t, func() bool {
		return len(sink.all()) == 2
	}, 3*time.Second, 10*time.Millisecond)

	updates := sink.all()
	assert.Equal(t, DetailLoading, updates[0].State)
	assert.Equal(t, "חנות", updates[0].Details.Name)
	assert.Equal(t, DetailReady, updates[1].State)
}

func TestDetailViewFetchError(t *testing.T) {
	fetcher := &fakeDetailFetcher{err: errors.New("backend reports error")}
	sink := &updateSink{}
	v := NewDetailView(fetcher, sink.deliver)
	defer v.Close()

	v.Open(context.Background(), types.Record{types.FieldID: int64(1)})

	require.Eventually(t, func() bool {
		updates := sink.all()
		return len(updates) == 2 && updates[1].State == DetailFailed
	}, 3*time.Second, 10*time.Millisecond)
}

func TestDetailViewCloseDropsLateResponse(t *testing.T) {
	fetcher := &fakeDetailFetcher{
		fields:  []types.DetailField{{Field: types.FieldLocation, Value: "עכו"}},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	sink := &updateSink{}
	v := NewDetailView(fetcher, sink.deliver)

	v.Open(context.Background(), types.Record{types.FieldID: int64(1)})
	select {
	case <-fetcher.started:
	case <-time.After(3 * time.Second):
		t.Fatal("fetch never started")
	}

	v.Close()
	close(fetcher.block)
	time.Sleep(50 * time.Millisecond)

	// Only the loading update arrived; the late response went nowhere.
	updates := sink.all()
	require.Len(t, updates, 1)
	assert.Equal(t, DetailLoading, updates[0].State)
}

func TestRenderPrintable(t *testing.T) {
	d := Details{
		Name: "מכולת דני",
		Core: []CoreField{
			{Key: types.FieldPhone, Label: "טלפון", Value: phone.Format("0501234567")},
		},
		Extended: []types.DetailField{
			{Field: "בעלים", Value: "דני"},
		},
	}

	doc, err := RenderPrintable(d, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "מכולת דני")
	assert.Contains(t, doc, "050-1234567")
	assert.Contains(t, doc, "בעלים")
	assert.Contains(t, doc, "15/06/2025")
	assert.Contains(t, doc, `dir="rtl"`)
}

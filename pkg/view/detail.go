package view

import (
	"context"
	"sync"

	"github.com/BasharMawase/Nextis-Admin/pkg/phone"
	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// CoreFields is the fixed field set rendered at the top of the client
// detail view, in display order.
var CoreFields = []string{
	types.FieldLocation,
	types.FieldPhone,
	types.FieldAnyDesk,
	types.FieldSourceFile,
}

// coreIcons and coreLabels decorate the core fields.
var coreIcons = map[string]string{
	types.FieldLocation:   "📍",
	types.FieldPhone:      "📞",
	types.FieldAnyDesk:    "💻",
	types.FieldSourceFile: "📁",
}

var coreLabels = map[string]string{
	types.FieldLocation:   "מיקום",
	types.FieldPhone:      "טלפון",
	types.FieldAnyDesk:    "AnyDesk",
	types.FieldSourceFile: "מקור הנתונים",
}

// detailSkip lists aggregated fields never shown in the extended
// section: system fields, the record name (already the title), and the
// extra-data channel.
var detailSkip = map[string]bool{
	types.FieldID:           true,
	types.FieldCreatedAt:    true,
	types.FieldBusinessName: true,
	types.FieldExtraData:    true,
}

// CoreField is one decorated entry of the core section.
type CoreField struct {
	Key   string
	Label string
	Icon  string
	Value string
}

// Details is the categorized read view of one client record.
type Details struct {
	Name     string
	Core     []CoreField
	Extended []types.DetailField
}

// DetailFetcher fetches the aggregated field list for one record.
type DetailFetcher interface {
	FetchDetails(ctx context.Context, id int64) ([]types.DetailField, error)
}

// Partition assembles the categorized detail view from the aggregated
// field list, falling back to the originating record for core values the
// aggregation did not return. Core phone values are normalized for
// display. Extended entries exclude core and system fields and drop
// empty values.
func Partition(rec types.Record, fields []types.DetailField) Details {
	d := Details{Name: recordName(rec)}

	byField := make(map[string]string, len(fields))
	for _, f := range fields {
		byField[f.Field] = f.Value
	}

	for _, key := range CoreFields {
		value, ok := byField[key]
		if !ok {
			value = rec.StringField(key)
		}
		if value == "" {
			value = "-"
		}
		if key == types.FieldPhone {
			value = phone.Format(value)
		}
		d.Core = append(d.Core, CoreField{
			Key:   key,
			Label: coreLabels[key],
			Icon:  coreIcons[key],
			Value: value,
		})
	}

	core := make(map[string]bool, len(CoreFields))
	for _, key := range CoreFields {
		core[key] = true
	}
	for _, f := range fields {
		if core[f.Field] || detailSkip[f.Field] || f.Value == "" {
			continue
		}
		d.Extended = append(d.Extended, f)
	}

	return d
}

// recordName resolves the display name of a record, tolerating the
// pre-normalization header key.
func recordName(rec types.Record) string {
	if name := firstField(rec, types.FieldBusinessName, "Business Name"); name != "" {
		return name
	}
	return "לא ידוע"
}

// DetailState is the lifecycle of a DetailView load.
type DetailState int

const (
	DetailIdle DetailState = iota
	DetailLoading
	DetailReady
	DetailFailed
)

// DetailUpdate is one delivered detail-view outcome.
type DetailUpdate struct {
	State   DetailState
	Details Details
	Err     error
}

// DetailView loads and assembles the categorized view of one record.
// Open supersedes any in-flight load, so a late response for a
// previously viewed client never reaches the callback; Close drops
// whatever is still in flight when the surface is dismissed.
type DetailView struct {
	fetcher DetailFetcher
	deliver func(DetailUpdate)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewDetailView creates a detail view delivering state updates through
// the given callback.
func NewDetailView(fetcher DetailFetcher, deliver func(DetailUpdate)) *DetailView {
	return &DetailView{fetcher: fetcher, deliver: deliver}
}

// Open starts loading the detail view for the given record. The callback
// receives a loading update immediately and a ready or failed update
// when the fetch resolves, unless a newer Open or Close superseded it.
func (v *DetailView) Open(ctx context.Context, rec types.Record) {
	v.mu.Lock()
	v.supersedeLocked()
	seq := v.seq
	reqCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.deliver(DetailUpdate{State: DetailLoading, Details: Details{Name: recordName(rec)}})
	v.mu.Unlock()

	go func() {
		fields, err := v.fetcher.FetchDetails(reqCtx, rec.ID())

		v.mu.Lock()
		defer v.mu.Unlock()
		if seq != v.seq {
			// The view moved on while this load was in flight.
			return
		}
		if err != nil {
			v.deliver(DetailUpdate{State: DetailFailed, Err: err})
			return
		}
		v.deliver(DetailUpdate{State: DetailReady, Details: Partition(rec, fields)})
	}()
}

// Close dismisses the view; any in-flight load is discarded.
func (v *DetailView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.supersedeLocked()
}

func (v *DetailView) supersedeLocked() {
	v.seq++
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

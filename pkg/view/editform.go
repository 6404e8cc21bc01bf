package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// FixedEditFields are the priority fields always present in an edit
// form, in display order. The source file is system-assigned and not
// editable.
var FixedEditFields = []string{
	types.FieldBusinessName,
	types.FieldLocation,
	types.FieldPhone,
	types.FieldAnyDesk,
}

// editLabels maps fixed field keys to their form labels.
var editLabels = map[string]string{
	types.FieldBusinessName: "שם העסק",
	types.FieldLocation:     "עיר",
	types.FieldPhone:        "מספר טלפון",
	types.FieldAnyDesk:      "AnyDesk",
}

// editSkip lists record fields never exposed as editable entries.
var editSkip = map[string]bool{
	types.FieldID:         true,
	types.FieldCreatedAt:  true,
	types.FieldExtraData:  true,
	types.FieldSourceFile: true,
}

// EditField is one entry of an edit form: fixed entries are always
// present and cannot be removed, dynamic entries mirror the record's
// remaining scalar fields.
type EditField struct {
	Key   string
	Label string
	Value string
	Fixed bool
}

// EditForm is the editable field list for one edit session. It is built
// once when the edit view opens and discarded on cancel or after a
// successful submit; submission reloads authoritative state from the
// backend rather than retaining local edits.
type EditForm struct {
	recordID int64
	fields   []EditField
}

// NewEditForm builds the field list from a record: fixed priority fields
// first (defaulted to empty when absent), then one dynamic entry per
// remaining scalar field. Object- and array-valued fields belong to the
// extra-data channel and are skipped. Dynamic entries are ordered under
// Hebrew collation so the form layout is stable across sessions.
func NewEditForm(rec types.Record) *EditForm {
	f := &EditForm{recordID: rec.ID()}

	for _, key := range FixedEditFields {
		f.fields = append(f.fields, EditField{
			Key:   key,
			Label: editLabels[key],
			Value: rec.StringField(key),
			Fixed: true,
		})
	}

	fixed := make(map[string]bool, len(FixedEditFields))
	for _, key := range FixedEditFields {
		fixed[key] = true
	}

	var dynamic []string
	for key, value := range rec {
		if fixed[key] || editSkip[key] || !types.IsScalar(value) {
			continue
		}
		dynamic = append(dynamic, key)
	}
	c := collate.New(language.Hebrew)
	sort.Slice(dynamic, func(i, j int) bool {
		return c.CompareString(dynamic[i], dynamic[j]) < 0
	})

	for _, key := range dynamic {
		f.fields = append(f.fields, EditField{Key: key, Label: key, Value: rec.StringField(key)})
	}

	return f
}

// RecordID returns the identifier of the record under edit.
func (f *EditForm) RecordID() int64 {
	return f.recordID
}

// Fields returns the current field list in display order.
func (f *EditForm) Fields() []EditField {
	return f.fields
}

// SetValue updates the value of an existing field.
// Returns ErrNotFound for an unknown key.
func (f *EditForm) SetValue(key, value string) error {
	for i := range f.fields {
		if f.fields[i].Key == key {
			f.fields[i].Value = value
			return nil
		}
	}
	return types.ErrNotFound
}

// AddField appends a new dynamic field. The name must be non-empty and
// not collide with an existing field; on rejection the form is
// unchanged.
func (f *EditForm) AddField(name, value string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.ErrFieldNameEmpty
	}
	for _, fld := range f.fields {
		if fld.Key == name {
			return types.ErrFieldExists
		}
	}
	f.fields = append(f.fields, EditField{Key: name, Label: name, Value: value})
	return nil
}

// RemoveField removes a dynamic field. Fixed fields cannot be removed.
func (f *EditForm) RemoveField(key string) error {
	for i, fld := range f.fields {
		if fld.Key != key {
			continue
		}
		if fld.Fixed {
			return types.ErrFieldFixed
		}
		f.fields = append(f.fields[:i], f.fields[i+1:]...)
		return nil
	}
	return types.ErrNotFound
}

// Serialize flattens the form into the key/value update payload, used
// verbatim as the request body.
func (f *EditForm) Serialize() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fld := range f.fields {
		out[fld.Key] = fld.Value
	}
	return out
}

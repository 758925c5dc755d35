package theme

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// slotTable maps slot names to struct field indexes. A category and its
// refinement declare their fields in the same order, so one index serves both.
type slotTable struct {
	names  []string
	fields map[string]int
}

var (
	themeColorSlots  = newSlotTable(reflect.TypeOf(ThemeColorsRefinement{}))
	statusColorSlots = newSlotTable(reflect.TypeOf(StatusColorsRefinement{}))
)

func newSlotTable(t reflect.Type) slotTable {
	table := slotTable{fields: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		table.names = append(table.names, name)
		table.fields[name] = i
	}
	return table
}

// ThemeColorSlots returns the ThemeColors slot names in schema order.
func ThemeColorSlots() []string {
	return append([]string(nil), themeColorSlots.names...)
}

// StatusColorSlots returns the StatusColors slot names in schema order.
func StatusColorSlots() []string {
	return append([]string(nil), statusColorSlots.names...)
}

// Slot returns the color stored in the named slot.
func (c ThemeColors) Slot(name string) (Color, bool) {
	return themeColorSlots.lookup(reflect.ValueOf(c), name)
}

// Slot returns the color stored in the named slot.
func (c StatusColors) Slot(name string) (Color, bool) {
	return statusColorSlots.lookup(reflect.ValueOf(c), name)
}

func (t slotTable) lookup(v reflect.Value, name string) (Color, bool) {
	i, ok := t.fields[name]
	if !ok {
		return Color{}, false
	}
	return v.Field(i).Interface().(Color), true
}

// UnmarshalJSON decodes a document whose keys are slot names and whose values
// are color literals. Unknown keys are ignored and null values leave the slot unset.
func (r *ThemeColorsRefinement) UnmarshalJSON(data []byte) error {
	var out ThemeColorsRefinement
	if err := themeColorSlots.decode(data, reflect.ValueOf(&out).Elem()); err != nil {
		return err
	}
	*r = out
	return nil
}

// UnmarshalJSON decodes a document whose keys are slot names and whose values
// are color literals. Unknown keys are ignored and null values leave the slot unset.
func (r *StatusColorsRefinement) UnmarshalJSON(data []byte) error {
	var out StatusColorsRefinement
	if err := statusColorSlots.decode(data, reflect.ValueOf(&out).Elem()); err != nil {
		return err
	}
	*r = out
	return nil
}

// ParseThemeColorsRefinement decodes a ThemeColors overlay from a JSON object.
func ParseThemeColorsRefinement(data []byte) (*ThemeColorsRefinement, error) {
	var r ThemeColorsRefinement
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &r, nil
}

// ParseStatusColorsRefinement decodes a StatusColors overlay from a JSON object.
func ParseStatusColorsRefinement(data []byte) (*StatusColorsRefinement, error) {
	var r StatusColorsRefinement
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &r, nil
}

func (t slotTable) decode(data []byte, dst reflect.Value) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return err
	}

	for i, name := range t.names {
		raw, ok := doc[name]
		if !ok || isNull(raw) {
			continue
		}

		var literal string
		if err := json.Unmarshal(raw, &literal); err != nil {
			return &ParseError{Kind: InvalidColorLiteral, Slot: name, Value: string(raw), Err: err}
		}

		c, err := ParseColor(literal)
		if err != nil {
			return &ParseError{Kind: InvalidColorLiteral, Slot: name, Value: literal, Err: err}
		}
		dst.Field(i).Set(reflect.ValueOf(&c))
	}

	return nil
}

// UnknownKeys returns, sorted, the keys of the JSON object doc that are not in slots.
func UnknownKeys(doc []byte, slots []string) ([]string, error) {
	fields, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(slots))
	for _, s := range slots {
		known[s] = true
	}

	var unknown []string
	for k := range fields {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown, nil
}

// decodeDocument decodes a JSON object into its raw members. Anything other
// than an object is a MalformedDocument.
func decodeDocument(data []byte) (map[string]json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Kind: MalformedDocument, Err: err}
	}
	if doc == nil {
		return nil, &ParseError{Kind: MalformedDocument}
	}
	return doc, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Package wire holds the payload shapes exchanged with the remote recipe and
// store service. The service schema is not guaranteed field by field, so every
// type here decodes any syntactically valid JSON without returning an error and
// records whether the value had the expected kind.
package wire

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// kind returns the first significant byte of a JSON value.
func kind(data []byte) byte {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

func isNumberStart(b byte) bool {
	return b == '-' || (b >= '0' && b <= '9')
}

// Number is a JSON value that only counts when it is a number.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a valid Number.
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Or returns the number, or def when the value was absent or not numeric.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

// UnmarshalJSON implements the json.Unmarshaler interface for Number.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	if !isNumberStart(kind(data)) {
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*n = Number{Value: v, Valid: true}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Number.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Text is a JSON value that only counts when it is a string.
type Text struct {
	Value string
	Valid bool
}

// NewText returns a valid Text.
func NewText(s string) Text {
	return Text{Value: s, Valid: true}
}

// Or returns the string, or def when the value was absent or not a string.
func (t Text) Or(def string) string {
	if !t.Valid {
		return def
	}
	return t.Value
}

// UnmarshalJSON implements the json.Unmarshaler interface for Text.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	if kind(data) != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	*t = Text{Value: s, Valid: true}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Text.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// ID is a record identifier sent either as a string or as a number.
// Numbers are rendered in their shortest decimal form; any other kind is empty.
type ID string

// UnmarshalJSON implements the json.Unmarshaler interface for ID.
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ""
	switch k := kind(data); {
	case k == '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*id = ID(s)
		}
	case isNumberStart(k):
		var f float64
		if err := json.Unmarshal(data, &f); err == nil {
			*id = ID(strconv.FormatFloat(f, 'f', -1, 64))
		}
	}
	return nil
}

// QuantityKind tells which JSON kind a Quantity was sent as.
type QuantityKind int

const (
	QuantityAbsent QuantityKind = iota
	QuantityNumber
	QuantityString
)

// Quantity is a grocery amount sent as a number ("2"), a string ("2 cups"), or
// not at all. Booleans, objects and arrays are treated as absent.
type Quantity struct {
	Kind   QuantityKind
	Number float64
	Text   string
}

// NumberQuantity returns a Quantity sent as a JSON number.
func NumberQuantity(v float64) Quantity {
	return Quantity{Kind: QuantityNumber, Number: v}
}

// TextQuantity returns a Quantity sent as a JSON string.
func TextQuantity(s string) Quantity {
	return Quantity{Kind: QuantityString, Text: s}
}

// UnmarshalJSON implements the json.Unmarshaler interface for Quantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = Quantity{}
	switch k := kind(data); {
	case k == '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*q = TextQuantity(s)
		}
	case isNumberStart(k):
		var f float64
		if err := json.Unmarshal(data, &f); err == nil {
			*q = NumberQuantity(f)
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Quantity.
func (q Quantity) MarshalJSON() ([]byte, error) {
	switch q.Kind {
	case QuantityNumber:
		return json.Marshal(q.Number)
	case QuantityString:
		return json.Marshal(q.Text)
	}
	return []byte("null"), nil
}

// Strings is a list of strings. A non-array value decodes to nil and non-string
// elements are skipped.
type Strings []string

// UnmarshalJSON implements the json.Unmarshaler interface for Strings.
func (s *Strings) UnmarshalJSON(data []byte) error {
	*s = nil
	var elems []json.RawMessage
	if kind(data) != '[' || json.Unmarshal(data, &elems) != nil {
		return nil
	}
	out := make(Strings, 0, len(elems))
	for _, elem := range elems {
		if kind(elem) != '"' {
			continue
		}
		var v string
		if err := json.Unmarshal(elem, &v); err == nil {
			out = append(out, v)
		}
	}
	*s = out
	return nil
}

// objects decodes raw as an array of JSON objects into T values. A non-array
// value yields nil; elements that are not objects are skipped.
func objects[T any](raw json.RawMessage) []T {
	var elems []json.RawMessage
	if kind(raw) != '[' || json.Unmarshal(raw, &elems) != nil {
		return nil
	}
	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		if kind(elem) != '{' {
			continue
		}
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

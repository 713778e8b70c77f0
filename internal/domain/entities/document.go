package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document is a stored record of any collection: a flat map keyed by field name.
//
// Storage model (DynamoDB, table "records"):
//   - PK: pk = "{orgId}#{collectionPath}"
//   - SK: id
//   - every document field is a top-level attribute
//
// The record id travels in the "id" key once the document has been persisted.

type Document map[string]any

const FieldID = "id"

func (d Document) ID() string {
	return d.String(FieldID)
}

func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Float reads numeric fields that may have been stored as numbers or numeric strings.
func (d Document) Float(key string) float64 {
	f, _ := ToFloat(d[key])
	return f
}

func (d Document) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

func (d Document) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Clone deep-copies nested maps and slices so callers can mutate the copy freely.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge returns a copy of d with every key of patch applied on top.
func (d Document) Merge(patch Document) Document {
	out := d.Clone()
	if out == nil {
		out = Document{}
	}
	for k, v := range patch {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Document:
		return t.Clone()
	case map[string]any:
		return Document(t).Clone()
	case []any:
		out := make([]any, len(t))
		for i, it := range t {
			out[i] = cloneValue(it)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Decode maps a document onto one of the typed entities through its json tags.
func Decode(d Document, out any) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Encode is the inverse of Decode.
func Encode(v any) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return d, nil
}

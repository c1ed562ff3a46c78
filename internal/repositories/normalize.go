package repositories

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Rows can come back from either casing variant of a table, and file
// lists have been stored over time as JSON-encoded strings, bare
// strings, or native arrays. Everything external gets normalized here,
// immediately on receipt; ambiguous shapes never propagate past this
// boundary.

// ResolveField looks up a field on a raw row by the verbatim name, then
// all-lowercase, then all-uppercase, returning the first defined value
// or nil.
func ResolveField(row map[string]interface{}, field string) interface{} {
	if v, ok := row[field]; ok && v != nil {
		return v
	}
	if v, ok := row[strings.ToLower(field)]; ok && v != nil {
		return v
	}
	if v, ok := row[strings.ToUpper(field)]; ok && v != nil {
		return v
	}
	return nil
}

// NormalizeFileList converts any of the historical encodings of an
// attached-file list into a clean slice: nil, a native list, a
// JSON-encoded array string, or a bare URL string. Empty entries are
// dropped. Normalizing a serialized normalized list yields the same
// list back.
func NormalizeFileList(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return filterEmpty(v)
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			switch p := parsed.(type) {
			case []interface{}:
				return NormalizeFileList(p)
			case string:
				if p != "" {
					return []string{p}
				}
				return []string{}
			}
		}
		// Not JSON: a bare URL stored directly.
		return []string{v}
	default:
		return []string{}
	}
}

func filterEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SerializeFileList encodes a file list back to the JSON-encoded-string
// form other consumers of the table expect. Empty lists serialize to
// nil so the column stays NULL.
func SerializeFileList(urls []string) *string {
	urls = filterEmpty(urls)
	if len(urls) == 0 {
		return nil
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return nil
	}
	s := string(encoded)
	return &s
}

func stringField(row map[string]interface{}, field string) string {
	switch v := ResolveField(row, field).(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func int64Field(row map[string]interface{}, field string) int64 {
	switch v := ResolveField(row, field).(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

func boolField(row map[string]interface{}, field string) bool {
	switch v := ResolveField(row, field).(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true") || v == "t"
	default:
		return false
	}
}

// timeField handles both native timestamps and the ISO strings some
// deployments hand back for date/time columns.
func timeField(row map[string]interface{}, field string) *time.Time {
	switch v := ResolveField(row, field).(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}

// Package propcodec implements the wire representation of property values:
// the parse/format pairs generated accessors use to read and write the
// string-valued property store. Every pair round-trips: for any value v,
// parsing Format(v) yields v again, including the empty list, which formats
// to the empty string.
//
// Parsers report failure through a boolean instead of an error; a generated
// getter treats unparsable content the same as an absent key.
package propcodec

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBool matches "1" and "true" as true, "0" and "false" as false,
// case-insensitively. Anything else fails.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "1", "true":
		return true, true
	case "0", "false":
		return false, true
	}
	return false, false
}

// FormatBool formats as "true"/"false".
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// FormatBoolAsInt formats as "1"/"0", for properties declared with
// integer_as_bool.
func FormatBoolAsInt(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// ParseInt32 is a strict decimal parse; trailing garbage fails.
func ParseInt32(s string) (int32, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err == nil
}

func FormatInt32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// ParseInt64 is a strict decimal parse over the full 64-bit range.
func ParseInt64(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

func FormatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// ParseFloat64 is a locale-independent parse that consumes the whole input.
func ParseFloat64(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// FormatFloat64 emits the shortest decimal string that reparses to the
// identical bit pattern.
func FormatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParseString is the identity parse; the stored text is the value.
func ParseString(s string) (string, bool) {
	return s, true
}

func FormatString(v string) string {
	return v
}

// ParseEnum matches s against names case-sensitively and returns the index
// of the matching variant in declaration order.
func ParseEnum(names []string, s string) (int32, bool) {
	for i, name := range names {
		if name == s {
			return int32(i), true
		}
	}
	return 0, false
}

// FormatEnum returns the declared name of variant v. A value outside the
// declared set is a programming error: generated setters range-check by
// construction, so this panics instead of failing softly.
func FormatEnum(names []string, v int32) string {
	if v < 0 || int(v) >= len(names) {
		panic(fmt.Sprintf("invalid enum value %d (have %d variants)", v, len(names)))
	}
	return names[v]
}

// ParseList parses a comma-joined list with parse applied per element.
// The empty string is the empty list. Any failing element fails the whole
// list; there are no partial results. Element order is preserved.
func ParseList[T any](s string, parse func(string) (T, bool)) ([]T, bool) {
	if s == "" {
		return []T{}, true
	}
	elements := strings.Split(s, ",")
	ret := make([]T, 0, len(elements))
	for _, element := range elements {
		v, ok := parse(element)
		if !ok {
			return nil, false
		}
		ret = append(ret, v)
	}
	return ret, true
}

// FormatList formats each element and joins with commas, preserving order.
// The empty list formats to the empty string.
func FormatList[T any](values []T, format func(T) string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(format(v))
	}
	return b.String()
}

// Package keycodec converts object keys between the external camelCase representation
// (forms, JSON API) and the persisted snake_case representation (table columns).
//
// Only keys are rewritten. Values are never inspected or coerced: nested objects are
// recursed into, arrays keep their elements (object elements are recursed into), and
// everything else (time.Time, numbers, strings, nil) is passed through untouched.
package keycodec

import (
	"strings"
	"unicode"
)

// Field is one key/value pair of an ordered Object.
type Field struct {
	Key   string
	Value any
}

// Object is an ordered set of fields. Key order survives Decode/Encode and JSON
// marshalling, which keeps generated SQL column lists and API payloads deterministic.
type Object []Field

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key, or appends the field when the key is new.
func (o Object) Set(key string, value any) Object {
	for i, f := range o {
		if f.Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Field{Key: key, Value: value})
}

// Without returns a copy of o without the given keys.
func (o Object) Without(keys ...string) Object {
	out := make(Object, 0, len(o))
next:
	for _, f := range o {
		for _, k := range keys {
			if f.Key == k {
				continue next
			}
		}
		out = append(out, f)
	}
	return out
}

// Keys returns the keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}

// Values returns the values in key order.
func (o Object) Values() []any {
	values := make([]any, len(o))
	for i, f := range o {
		values[i] = f.Value
	}
	return values
}

// Len returns the number of fields.
func (o Object) Len() int { return len(o) }

// Decode converts external (camelCase) keys to persisted (snake_case) keys.
func Decode(v any) any { return transform(v, ToSnake) }

// Encode converts persisted (snake_case) keys to external (camelCase) keys.
func Encode(v any) any { return transform(v, ToCamel) }

// DecodeObject is Decode specialised to Object.
func DecodeObject(o Object) Object { return transformObject(o, ToSnake) }

// EncodeObject is Encode specialised to Object.
func EncodeObject(o Object) Object { return transformObject(o, ToCamel) }

func transform(v any, key func(string) string) any {
	switch t := v.(type) {
	case Object:
		return transformObject(t, key)
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[key(k)] = transform(val, key)
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = transform(val, key)
		}
		return out
	case []Object:
		if t == nil {
			return t
		}
		out := make([]Object, len(t))
		for i, val := range t {
			out[i] = transformObject(val, key)
		}
		return out
	case []map[string]any:
		if t == nil {
			return t
		}
		out := make([]map[string]any, len(t))
		for i, val := range t {
			out[i], _ = transform(val, key).(map[string]any)
		}
		return out
	default:
		return v
	}
}

func transformObject(o Object, key func(string) string) Object {
	if o == nil {
		return nil
	}
	out := make(Object, len(o))
	for i, f := range o {
		out[i] = Field{Key: key(f.Key), Value: transform(f.Value, key)}
	}
	return out
}

// ToSnake converts a camelCase key to snake_case ("profileImageUrl" -> "profile_image_url").
// Keys that are already snake_case are returned unchanged.
func ToSnake(key string) string {
	if key == "" {
		return key
	}
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamel converts a snake_case key to camelCase ("profile_image_url" -> "profileImageUrl").
// Keys that are already camelCase are returned unchanged. Leading underscores are kept.
func ToCamel(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))

	leading := len(key) - len(strings.TrimLeft(key, "_"))
	b.WriteString(key[:leading])

	upperNext := false
	for _, r := range key[leading:] {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	if upperNext {
		// trailing underscore has no following letter to absorb it
		b.WriteByte('_')
	}
	return b.String()
}

// IsSnake reports whether key is usable as a column name: non-empty with no upper-case
// letters. Single-word keys ("name") are valid in both conventions.
func IsSnake(key string) bool {
	return key != "" && !strings.ContainsFunc(key, unicode.IsUpper)
}

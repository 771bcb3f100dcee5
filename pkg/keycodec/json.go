package keycodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MarshalJSON writes the fields in order.
func (o Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("keycodec: marshal %q: %w", f.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping its key order. Nested objects become
// Object values, arrays become []any and numbers are kept as json.Number.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return err
	}
	if v == nil {
		*o = nil
		return nil
	}
	obj, ok := v.(Object)
	if !ok {
		return errors.New("keycodec: JSON value is not an object")
	}
	*o = obj
	return nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("keycodec: unexpected key token %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Field{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("keycodec: unexpected delimiter %v", delim)
	}
}

// FromStruct converts a struct into an ordered Object using its JSON form.
// Field order follows the struct declaration.
func FromStruct(v any) (Object, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var o Object
	if err := o.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return o, nil
}

// EncodeStruct converts a persisted struct (snake_case json tags) into its external form.
func EncodeStruct(v any) (Object, error) {
	o, err := FromStruct(v)
	if err != nil {
		return nil, err
	}
	return EncodeObject(o), nil
}

// EncodeSlice applies EncodeStruct to every element of items.
func EncodeSlice[T any](items []T) ([]Object, error) {
	out := make([]Object, 0, len(items))
	for i := range items {
		o, err := EncodeStruct(&items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

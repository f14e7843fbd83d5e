package normalize

import "encoding/json"

// Optional provider fields are declared with the types below. Each one
// swallows a JSON type mismatch and reads as absent, so a wrongly typed
// optional field never costs the whole item.

// lenientString holds a JSON string. Any other JSON value reads as "".
type lenientString string

func (s *lenientString) UnmarshalJSON(data []byte) error {
	*s = lenientString(decodeString(data))
	return nil
}

// lenientStrings keeps the non-empty string elements of a JSON array.
type lenientStrings []string

func (l *lenientStrings) UnmarshalJSON(data []byte) error {
	*l = nil
	items, ok := decodeArray(data)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := decodeString(item); s != "" {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

// optObject is an optional nested object.
type optObject[T any] struct {
	value *T
}

func (o *optObject[T]) UnmarshalJSON(data []byte) error {
	o.value = nil
	var v T
	if err := decodeItem(data, &v); err != nil {
		return nil
	}
	o.value = &v
	return nil
}

// get returns the decoded object, or nil when it was absent or not an object.
func (o optObject[T]) get() *T {
	return o.value
}

// optList is an optional array of objects. Elements that are not objects
// decode to the zero value so positions are preserved.
type optList[T any] []T

func (l *optList[T]) UnmarshalJSON(data []byte) error {
	*l = nil
	items, ok := decodeArray(data)
	if !ok {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		var v T
		if err := decodeItem(item, &v); err == nil {
			out[i] = v
		}
	}
	*l = out
	return nil
}

var (
	_ json.Unmarshaler = (*lenientString)(nil)
	_ json.Unmarshaler = (*lenientStrings)(nil)
)

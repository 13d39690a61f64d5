package optional

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes the value, or null for Null. A Missing field also
// encodes as null; skipping it entirely is the job of the field's omitzero
// tag, which encoding/json drives through IsZero.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if v, ok := f.Get(); ok {
		return json.Marshal(v)
	}
	return jsonNull, nil
}

// UnmarshalJSON decodes null to Null and anything else to a value. It only
// runs when the key is present in the input, so an absent key leaves the
// field at its zero value, Missing.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*f = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Of(v)
	return nil
}

// MarshalJSON encodes the value, or null for None.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.some {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null to None and anything else to Some.
func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

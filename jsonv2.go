//go:build goexperiment.jsonv2

package optional

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
)

// MarshalJSONTo encodes the value, or a null token for Null and Missing.
// Missing fields are skipped before this is called when the field carries
// the omitzero tag.
func (f Field[T]) MarshalJSONTo(enc *jsontext.Encoder) error {
	if v, ok := f.Get(); ok {
		return json.MarshalEncode(enc, v)
	}
	return enc.WriteToken(jsontext.Null)
}

// UnmarshalJSONFrom decodes a null token to Null and anything else to a
// value.
func (f *Field[T]) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	if dec.PeekKind() == 'n' {
		if _, err := dec.ReadToken(); err != nil {
			return err
		}
		*f = Null[T]()
		return nil
	}
	var v T
	if err := json.UnmarshalDecode(dec, &v); err != nil {
		return err
	}
	*f = Of(v)
	return nil
}

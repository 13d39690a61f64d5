package optional

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// YAML decoding is bridged through the JSON codec: goccy's decoder
// short-circuits explicit null nodes before consulting any custom
// unmarshaler, so a per-field hook can never observe the Null state.
// UnmarshalYAML converts the document with YAMLToJSON and hands it to
// encoding/json, where Field.UnmarshalJSON sees the null and absent keys
// leave fields Missing. Field names follow json tags on this path.
//
// Encoding has no such constraint: goccy invokes MarshalYAML for values
// and nulls and drives omitzero through IsZero, so yaml.Marshal works
// directly, as does the JSON-bridged MarshalYAML.

// MarshalYAML encodes the value, or a YAML null for Null. A Missing field
// is skipped when tagged omitzero; on its own it encodes as null.
func (f Field[T]) MarshalYAML() (any, error) {
	if v, ok := f.Get(); ok {
		return v, nil
	}
	return nil, nil
}

// MarshalYAML encodes v as YAML through the JSON codec: Missing fields
// tagged omitzero are omitted and Null fields encode as null.
func MarshalYAML(v any) ([]byte, error) {
	j, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(j)
}

// UnmarshalYAML decodes YAML into v through the JSON codec: absent keys
// leave fields Missing, explicit nulls decode to Null, and values decode
// to values.
func UnmarshalYAML(data []byte, v any) error {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(j, v)
}

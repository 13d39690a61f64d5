package codegen

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// tagKeys returns the tag keys to rewrite.
func tagKeys(yamlMode bool) []string {
	if yamlMode {
		return []string{"json", "yaml"}
	}
	return []string{"json"}
}

// editTagLiteral rewrites a struct tag literal (including its quotes) so
// the given keys carry the omitzero directive. It reports whether the
// literal changed. A key tagged "-" is left alone; a key already carrying
// omitempty is ErrConflictingTag, since under null-skipping encoders it
// would drop explicit nulls and collapse the tri-state.
func editTagLiteral(lit string, keys []string) (string, bool, error) {
	raw := strings.HasPrefix(lit, "`")
	var inner string
	if raw {
		inner = strings.TrimSuffix(strings.TrimPrefix(lit, "`"), "`")
	} else {
		var err error
		inner, err = strconv.Unquote(lit)
		if err != nil {
			return "", false, fmt.Errorf("malformed struct tag %s: %w", lit, err)
		}
	}

	orig := inner
	for _, key := range keys {
		edited, err := editTagValue(inner, key)
		if err != nil {
			return "", false, err
		}
		inner = edited
	}
	if inner == orig {
		return lit, false, nil
	}

	if raw && !strings.Contains(inner, "`") {
		return "`" + inner + "`", true, nil
	}
	return strconv.Quote(inner), true, nil
}

// editTagValue splices ",omitzero" into the value of one tag key, adding
// the key when it is absent.
func editTagValue(inner, key string) (string, error) {
	cur, ok := reflect.StructTag(inner).Lookup(key)
	if !ok {
		entry := key + `:",omitzero"`
		if strings.TrimSpace(inner) == "" {
			return entry, nil
		}
		return inner + " " + entry, nil
	}

	parts := strings.Split(cur, ",")
	name, opts := parts[0], parts[1:]
	if name == "-" && len(opts) == 0 {
		// explicitly excluded from this encoding
		return inner, nil
	}
	if slices.Contains(opts, "omitempty") {
		return "", fmt.Errorf("%s tag %q: %w", key, cur, ErrConflictingTag)
	}
	if slices.Contains(opts, "omitzero") {
		return inner, nil
	}

	// rebuild the option list rather than appending: the literal "-"
	// name is spelled "-," and its empty trailing option must not survive
	newParts := []string{name}
	for _, o := range opts {
		if o != "" {
			newParts = append(newParts, o)
		}
	}
	newParts = append(newParts, "omitzero")
	old := key + `:"` + cur + `"`
	edited := key + `:"` + strings.Join(newParts, ",") + `"`
	// anchor on the key boundary so e.g. a myjson key never matches json
	var next string
	if strings.HasPrefix(inner, old) {
		next = edited + inner[len(old):]
	} else {
		next = strings.Replace(inner, " "+old, " "+edited, 1)
	}
	if next == inner {
		// Lookup found the key but the source spelling uses escapes we do
		// not reproduce; refuse rather than guess.
		return "", fmt.Errorf("cannot rewrite %s tag in %q", key, inner)
	}
	return next, nil
}

package codegen

import (
	"fmt"
	"go/format"
	"go/token"
	"sort"
)

// An edit replaces src[start:end] with text. Insertions have start == end.
type edit struct {
	start, end int
	text       string
}

func exported(names []string) bool {
	for _, n := range names {
		if token.IsExported(n) {
			return true
		}
	}
	return false
}

// RewriteSource splices omitzero directives into the tags of tri-state
// fields of the target structs and returns the formatted result. The
// targets must all come from the file whose source is given. Fields that
// are not typed optional.Field are left untouched, as are embedded and
// unexported fields, which the encoders never see.
func RewriteSource(fset *token.FileSet, src []byte, targets []*StructInfo, yamlMode bool) ([]byte, bool, error) {
	keys := tagKeys(yamlMode)

	var edits []edit
	for _, si := range targets {
		for _, fld := range si.Fields {
			if !fld.Tristate || len(fld.Names) == 0 || !exported(fld.Names) {
				continue
			}
			if fld.Node.Tag != nil {
				lit, changed, err := editTagLiteral(fld.Node.Tag.Value, keys)
				if err != nil {
					return nil, false, fmt.Errorf("%s.%s: %w", si.Name, fld.Names[0], err)
				}
				if !changed {
					continue
				}
				edits = append(edits, edit{
					start: fset.Position(fld.Node.Tag.Pos()).Offset,
					end:   fset.Position(fld.Node.Tag.End()).Offset,
					text:  lit,
				})
				continue
			}
			lit, _, err := editTagLiteral("``", keys)
			if err != nil {
				return nil, false, fmt.Errorf("%s.%s: %w", si.Name, fld.Names[0], err)
			}
			off := fset.Position(fld.Node.Type.End()).Offset
			edits = append(edits, edit{start: off, end: off, text: " " + lit})
		}
	}
	if len(edits) == 0 {
		return src, false, nil
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })
	out := append([]byte(nil), src...)
	for _, e := range edits {
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
	}

	formatted, err := format.Source(out)
	if err != nil {
		return nil, false, fmt.Errorf("failed to format rewritten source: %w", err)
	}
	return formatted, true, nil
}

package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
)

// ParseFile parses a Go source file, keeping comments so directive markers
// survive.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// ParseSource parses Go source from memory under the given name.
func ParseSource(name string, src []byte) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %q: %w", name, err)
	}
	return file, fset, nil
}

// ExtractStructs extracts all type declarations from a file. Non-struct
// declarations are recorded with a nil Struct so that selection can reject
// them by name; a non-struct carrying the //optional:fields directive is an
// immediate error.
//
// When info is non-nil, field types are resolved through the type checker,
// which also catches local aliases of optional.Field. Otherwise detection
// is syntactic, through the file's import table.
func ExtractStructs(file *ast.File, filePath string, info *types.Info) ([]*StructInfo, error) {
	imports := importTable(file)

	var structs []*StructInfo
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			marked := hasMarker(genDecl.Doc) || hasMarker(typeSpec.Doc)
			structType, isStruct := typeSpec.Type.(*ast.StructType)
			if marked && !isStruct {
				return nil, fmt.Errorf("%s directive on type %q: %w", Marker, typeSpec.Name.Name, ErrNotStruct)
			}

			si := &StructInfo{
				Name:     typeSpec.Name.Name,
				FilePath: filePath,
				Marked:   marked,
				Struct:   structType,
			}
			if isStruct && structType.Fields != nil {
				for _, field := range structType.Fields.List {
					var names []string
					for _, n := range field.Names {
						names = append(names, n.Name)
					}
					si.Fields = append(si.Fields, &FieldInfo{
						Names:    names,
						Tristate: isTristate(field.Type, imports, info),
						Node:     field,
					})
				}
			}
			if marked && !hasNamedField(si) {
				return nil, fmt.Errorf("%s directive on struct %q with no named fields: %w", Marker, si.Name, ErrNotStruct)
			}
			structs = append(structs, si)
		}
	}
	return structs, nil
}

// SelectTargets picks the structs to rewrite. With no names, the marked
// structs are selected. With names, every name must resolve to a struct
// with named fields; names not found here are reported through notFound so
// the caller can diagnose them across packages.
func SelectTargets(all []*StructInfo, names []string, notFound map[string]bool) ([]*StructInfo, error) {
	if len(names) == 0 {
		var targets []*StructInfo
		for _, si := range all {
			if si.Marked {
				targets = append(targets, si)
			}
		}
		return targets, nil
	}

	byName := make(map[string]*StructInfo, len(all))
	for _, si := range all {
		byName[si.Name] = si
	}

	var targets []*StructInfo
	for _, name := range names {
		si, ok := byName[name]
		if !ok {
			if notFound != nil {
				notFound[name] = true
			}
			continue
		}
		if si.Struct == nil || !hasNamedField(si) {
			return nil, fmt.Errorf("type %q: %w", name, ErrNotStruct)
		}
		if notFound != nil {
			delete(notFound, name)
		}
		targets = append(targets, si)
	}
	return targets, nil
}

func hasNamedField(si *StructInfo) bool {
	for _, f := range si.Fields {
		if len(f.Names) > 0 {
			return true
		}
	}
	return false
}

func hasMarker(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Marker {
			return true
		}
	}
	return false
}

// importTable maps local package names to import paths. Dot imports are
// keyed under ".". The Field package declares a name that differs from the
// last path component, so it gets its declared name when imported bare.
func importTable(file *ast.File) map[string]string {
	imports := make(map[string]string)
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, "\"")
		name := path[strings.LastIndex(path, "/")+1:]
		if path == FieldPackage {
			name = FieldPackageName
		}
		if imp.Name != nil {
			name = imp.Name.Name
		}
		imports[name] = path
	}
	return imports
}

// isTristate reports whether a field type is optional.Field, preferring
// type-checker information when available.
func isTristate(expr ast.Expr, imports map[string]string, info *types.Info) bool {
	if info != nil {
		if t := info.TypeOf(expr); t != nil {
			if named, ok := types.Unalias(t).(*types.Named); ok {
				obj := named.Obj()
				return obj.Name() == "Field" && obj.Pkg() != nil && obj.Pkg().Path() == FieldPackage
			}
			return false
		}
	}

	idx, ok := expr.(*ast.IndexExpr)
	if !ok {
		return false
	}
	switch x := idx.X.(type) {
	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)
		if !ok {
			return false
		}
		return x.Sel.Name == "Field" && imports[pkg.Name] == FieldPackage
	case *ast.Ident:
		// dot import
		return x.Name == "Field" && imports["."] == FieldPackage
	}
	return false
}

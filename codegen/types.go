package codegen

import "go/ast"

// FieldPackage is the import path of the package providing the tri-state
// Field type, and FieldPackageName its declared package name.
const (
	FieldPackage     = "github.com/cvpartner/optional-field"
	FieldPackageName = "optional"
)

// Marker is the directive comment that selects a struct for rewriting.
const Marker = "//optional:fields"

// StructInfo holds a type declaration extracted from a source file.
type StructInfo struct {
	// Name is the declared type name.
	Name string

	// FilePath is the file the declaration came from.
	FilePath string

	// Marked reports whether the declaration carries the //optional:fields
	// directive.
	Marked bool

	// Struct is the struct type node, nil when the declaration is not a
	// struct.
	Struct *ast.StructType

	// Fields holds one entry per field declaration, in order.
	Fields []*FieldInfo
}

// FieldInfo holds one field declaration of a struct.
type FieldInfo struct {
	// Names are the declared field names; empty for an embedded field.
	Names []string

	// Tristate reports whether the declared type is optional.Field.
	Tristate bool

	// Node is the field declaration.
	Node *ast.Field
}

// PackageInfo describes a discovered Go package directory.
type PackageInfo struct {
	// Dir is the directory containing the package.
	Dir string

	// Name is the package name.
	Name string

	// Files are the paths of the package's .go files.
	Files []string
}

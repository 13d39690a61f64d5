// Package codegen rewrites struct declarations so that optional.Field
// members participate correctly in serialization.
//
// For every selected struct, each field whose type is optional.Field gets
// the omitzero directive spliced into its json (and optionally yaml) tag,
// so a Missing field is skipped on output. The decode side needs no
// directive at all: the zero value of optional.Field is Missing, and the
// encoders leave absent keys at the zero value.
//
// Structs are selected either by name (stringer-style -type flags) or by a
// //optional:fields directive comment on the type declaration. Selecting
// anything that is not a struct with named fields is an error, as is a
// Field member already tagged omitempty, which would silently collapse the
// tri-state.
package codegen

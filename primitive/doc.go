// Package primitive defines the primitive value domain shared by the rest of
// the module: compile-time type constraints, runtime kind tags and the
// conversion-pair tables.
//
// Key pieces:
//   - Signed, Unsigned, Integer, Float, Number, Primitive: type constraints
//   - Kind: runtime tag for a primitive type, with predicates and bit widths
//   - Of, KindFor: reflect type to Kind mapping
//   - Castable, Lossless: which conversions exist and which preserve values
package primitive

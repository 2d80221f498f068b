// Package record builds simple record classes from declarative field lists.
//
// A record class holds a fixed, ordered set of named fields. Defining one
// runs three steps once, at definition time:
//   - extract the ordered field descriptors from a Declaration
//   - validate that no required field follows a defaulted one
//   - capture the descriptors in an immutable Class
//
// A Class then constructs instances from positional and named arguments and
// renders them as "Name(a=1, b=2)". Instances have a closed layout: only the
// declared fields can be read or written.
//
// Key types:
//   - Declaration: raw annotations and default assignments, in source order
//   - Field / Default: a field descriptor and its optional default value
//   - Class: the defined record type (Resolve, New, Format)
//   - Instance: a constructed record with per-instance storage
//
// Generated code produced by record-generator defines its classes with
// MustDefine and uses Resolve plus Value to fill typed struct fields.
package record

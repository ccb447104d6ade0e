package schemagen

import "github.com/invopop/jsonschema"

// KnownTypes is the known-type registry consulted before structural inference
// of object-shaped instances. A hit short-circuits inference: the returned
// schema is used as-is, with no recursion into the instance's fields.
//
// Implementations must be safe for concurrent read access; the Generator only
// ever calls Lookup. The registry's lifetime is owned by the caller and must
// outlive any Generate call using it.
type KnownTypes interface {
	// Lookup returns the pre-built schema for an exact instance value, or
	// false when the instance is not a known type.
	Lookup(instance any) (*jsonschema.Schema, bool)
}

// Package rw runs one transform definition in two modes.
//
// A dual-mode transform maps a Pair of a parent to Pairs of a field. The RO
// half is a value and is always present. The RW half is a Handle: either a
// pointer into the caller's data or absent. Absence is sticky. Projecting an
// absent handle never touches the data and yields another absent handle, so
// a transform written once behaves as a reader when fed values and as a
// writer when fed pointers.
//
//	name := access.Required(
//	    func(p Person) string { return p.Name },
//	    func(p *Person) *string { return &p.Name },
//	)
//
//	names := rw.ReadOnly(name)   // pipeline.Transform[Person, string]
//	edits := rw.ReadWrite(name)  // pipeline.Transform[*Person, *string]
//
// In read-write mode an output whose handle is absent is dropped, and a
// tuple output is dropped when any component is absent.
package rw

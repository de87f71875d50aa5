// Package access builds dual-mode transforms from plain struct accessors.
//
// A schema layer describes each field of a record once, with a getter for
// read-only mode and a pointer accessor for read-write mode:
//
//	var teamName = access.Optional(
//	    func(t Team) bool { return t.Name != "" },
//	    func(t Team) string { return t.Name },
//	    func(t *Team) *string { return &t.Name },
//	)
//
//	var teams = access.Repeated(
//	    func(c Company) []Team { return c.Teams },
//	    func(c *Company) *[]Team { return &c.Teams },
//	)
//
// The results compose with pipeline.Chain, pipeline.Fork2 and friends, and
// run through rw.ReadOnly or rw.ReadWrite. A Registry keeps them by name.
package access

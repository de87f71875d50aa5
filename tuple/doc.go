// Package tuple provides small fixed-arity product types and the elementwise
// helpers the pipeline algebra uses to combine transforms over them.
//
// Heterogeneous tuples exist for arities 2 to 4. Larger or uniform products
// use plain slices together with Zip and MapEach, which check lengths
// instead of relying on the type system.
package tuple

// Package pipeline provides composable, push-based data pipeline operators
// whose composition is governed by algebraic laws.
//
// A Source delivers values to a Sink. A Transform turns one value into a
// Source of values. Pipelines are assembled from these pieces without running
// anything; Fuse joins a Source to a Sink into an Effect, and running the
// Effect is one ordinary, synchronous call sequence. No goroutines are
// started and nothing is buffered.
//
// # Laws
//
// Sinks under And and Sources under Plus are monoids with NopSink and Empty
// as identities. Source is a functor (Map) and a monad (Unit, Join, Bind).
// Chain is Kleisli composition of Transforms, so it is associative with
// Identity as neutral element. Chain distributes over Plus when the union
// feeds the chain:
//
//	Chain(f.Plus(g), h) == Chain(f, h).Plus(Chain(g, h))
//
// The other grouping is not an identity. Chain(f, g.Plus(h)) interleaves
// g's and h's outputs per value of f, while Chain(f, g).Plus(Chain(f, h))
// delivers every g output before any h output. Both orders are part of
// the contract.
//
// # Errors
//
// A Sink returns an error to stop enumeration. That error is returned
// unchanged by every enclosing Source, Transform and Effect. Panics are not
// recovered.
//
// # Usage
//
//	names := pipeline.Chain(teams, members)
//	err := pipeline.Fuse(pipeline.Bind(companies, names), record).Run()
//
//	sums := pipeline.LiftA2(func(a, b int) int { return a + b })
//	got, _ := pipeline.Collect(sums(pipeline.Of(1, 2, 3), pipeline.Of(1, 2, 3)))
//	// [2 3 4 3 4 5 4 5 6]
package pipeline

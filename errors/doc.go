// Package errors provides the structured error type used across pushflow.
//
// Errors raised by caller-supplied sinks, sources and transforms are never
// wrapped by the pipeline algebra; they reach the caller unchanged. AppError
// is reserved for faults the library itself detects: arity mismatches in
// homogeneous tuples, registry lookups, and configuration problems.
package errors

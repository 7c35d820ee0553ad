// Package random provides the random source capability and the weighted
// categorical sampler used by fixture generators.
//
// Generators never touch a global random number generator. Every draw goes
// through an injected Source, so a seeded Source produces byte-identical
// output across runs:
//
//	src := random.New(42)
//	label, err := random.Sample(src, random.Table{
//	    {Label: "a", Weight: 0.5},
//	    {Label: "b", Weight: 0.3},
//	    {Label: "c", Weight: 0.2},
//	})
//
// # Sampling
//
// Sample consumes exactly one Float64 draw. It scales the draw by the table
// total and walks options in registration order, returning the first option
// whose cumulative weight exceeds it. Ties resolve to the earlier option.
//
// # Concurrency
//
// Rand is not safe for concurrent use. Wrap it with Locked when a single
// source is shared between goroutines, or give each goroutine its own.
package random

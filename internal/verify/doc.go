// Package verify checks every registered conversion against an
// arbitrary-precision oracle.
//
// For each policy and each pair it converts a set of sample inputs through
// numconv.Convert and compares the outcome with the value or error
// classification computed with math/big. Samples are exhaustive for 8 and
// 16-bit sources and boundary values plus seeded random values otherwise.
// Round-trip properties (wrapping is an involution, truncating undoes
// extending) are checked on the same samples.
//
//	v := verify.New(verify.WithWorkers(8), verify.WithSeed(1))
//	report, err := v.Run(ctx)
//
// Every violation found is returned, aggregated into one error.
package verify

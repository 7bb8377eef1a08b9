// Package codegen generates the per-pair conversion functions of the policy
// packages and the dispatch table of the root package from the matrix.
//
// Each generated function is one bound check (or none) plus a cast. Checked
// pairs whose rule differs between 32 and 64-bit words are emitted into
// build-constrained files, one per word width, guarded by a constant
// assertion on math/bits.UintSize.
package codegen

// Package digest defines the incremental hashing contract every supported
// algorithm satisfies.
//
// An Adapter absorbs input with Update, produces a fixed-length output with
// Finalize, and can be returned to its initial state with Reset. Chunk
// boundaries never affect the result: any sequence of Update calls yields the
// same digest as a single Update over the concatenated bytes.
//
// Adapters are not safe for concurrent use. Callers construct a fresh instance
// per computation with New.
package digest

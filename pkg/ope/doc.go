// Package ope provides an order-preserving binary encoding (OPE) for typed
// scalar values and composite records.
//
// The core contract: for two logical values a and b of the same type and
// sort direction, encoding them with this package yields byte strings
// E(a) and E(b) whose unsigned lexicographic (memcmp) order equals the
// logical order of a and b. That makes the encoded bytes usable directly
// as keys in any key-ordered store (B-tree, LSM, sorted file) while
// preserving typed comparison semantics, which is the foundation of
// composite index keys in databases.
//
// # Scalar codec
//
// Each supported scalar type (signed 32/64-bit integers, dates,
// timestamps, IEEE-754 doubles, booleans, UTF-8 strings, and arbitrary
// binary blobs) has an Encode/Decode pair. Fixed-width numeric types are
// serialized big-endian after an XOR transform chosen by sort direction
// (see EncodeInt32, EncodeFloat64). Strings and binary blobs are
// self-delimiting: the encoder appends a terminator pair and the decoder
// discovers the payload length by scanning for it.
//
// # Record codec
//
// Record composes a sequence of typed fields into a single buffer,
// prefixing each with a one-byte null indicator chosen so that NULLs
// always sort below all non-NULL values, regardless of direction. Record
// also supports writing scan boundary keys (distinct indicator bytes used
// only for the low/high ends of a range scan, never stored) so that
// range-scan callers can build keys that are not themselves valid stored
// rows.
//
// # Collation
//
// There is no locale-specific string collation. Strings sort by UTF-8
// byte value, identical to memcmp over their encoded form.
//
// # Thread safety
//
// The scalar functions are pure and reentrant. A *Record instance is not
// thread-safe; its cursor and scratch buffer are mutated by every Put/Get
// call, and concurrent use from multiple goroutines is a data race.
// Distinct *Record instances are fully independent.
package ope

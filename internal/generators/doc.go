// Package generators holds the deterministic text generators behind every
// dashboard tool. Each generator is a pure function of its inputs: no I/O,
// no clock, no randomness, and no error returns. Inputs that yield nothing
// useful map to fixed fallback content instead.
//
// Lengths are measured in characters (runes), not bytes.
package generators

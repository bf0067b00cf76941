// Package converters provides the registry of tag conversion functions keyed
// by (source format, target format) name pairs.
//
// Lookups are exact and case-sensitive. The registry never composes
// conversions: if only A->B and B->C are registered, converting A to C is the
// caller's job. Registering a pair again replaces the previous function.
package converters

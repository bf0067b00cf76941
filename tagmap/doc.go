// Package tagmap provides ordered token tables used to translate grammemes
// between tagsets, together with table inversion and a YAML codec for the
// embedded table data.
//
// A Table keeps its pairs in declaration order. Keys are unique; values may
// repeat, in which case the table is not injective and inverting it has to
// pick one key per value:
//
//   - LastWins (default): the pair declared last wins.
//   - Strict: the first duplicate value aborts inversion with a *CollisionError.
//
// Collisions reports every duplicate value so callers can audit a table
// before relying on its inverse.
//
// # YAML form
//
// A table is a YAML mapping whose entry order is the table order:
//
//	name: mystem->opencorpora-int
//	pairs:
//	  S: NOUN
//	  жен: femn
package tagmap

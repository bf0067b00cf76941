// Package mystem converts between Yandex Mystem grammatical tags and the
// OpenCorpora internal tagset.
//
// A Mystem tag groups comma-separated grammemes into clauses joined by "=".
// The part after "=" may hold a parenthesized group of alternative analyses
// separated by "|":
//
//	S,жен,неод=(вин,мн|род,мн)
//
// Only the first alternative of a group is converted, and the text of that
// clause outside the parentheses is discarded. Grammemes without an
// OpenCorpora counterpart are dropped silently.
package mystem

// Package opencorpora holds the OpenCorpora grammeme catalogue and converts
// tags between its internal (Latin, "opencorpora-int") and external
// (Cyrillic, "opencorpora") representations.
//
// Both representations are comma-separated grammeme lists. Unlike the
// cross-tagset conversions, these are total over the catalogue: a grammeme
// missing from it is a data error and is reported as a
// *tagmap.UnknownTokenError instead of being dropped.
//
// Conversions to and from the AOT (aot.ru) tagset are registered but not
// implemented; they return converters.ErrNotImplemented.
package opencorpora

// Package audit checks the static tagset tables against each other and
// reports the findings as diagnostics.
//
// Checks:
//  1. every Mystem->OpenCorpora value is a catalogued OpenCorpora grammeme
//  2. every long part-of-speech name resolves to a Mystem grammeme
//  3. values shared by several keys of an inverted table (warning)
//  4. every catalogue parent is itself catalogued
package audit

// Package diagnostic provides structured errors, warnings and infos produced
// by the tagset table audit.
//
// Key capabilities:
//   - Grammemes a table emits that the destination tagset does not know
//   - Values shared by several keys of a table that gets inverted
//   - Broken parent links in the OpenCorpora catalogue
//   - Per-table size reports
package diagnostic

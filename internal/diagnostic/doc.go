// Package diagnostic provides structured errors, warnings and notes
// collected while converting a single constellation.
//
// Key capabilities:
//   - Non-fatal mapping problems (an unmappable place)
//   - Known limitations hit by a record (dropped dates, unparsed names)
//   - Stable codes and JSON field paths for reports
package diagnostic

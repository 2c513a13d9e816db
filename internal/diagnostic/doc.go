// Package diagnostic provides structured warnings and errors for the probe
// generator.
//
// Key capabilities:
//   - Duplicate syscall number reports
//   - Unclassified argument type notices
//   - Parameter list shape warnings
package diagnostic

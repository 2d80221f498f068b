// Package diagnostic provides structured errors, warnings and notes
// produced while checking record declarations.
//
// Key capabilities:
//   - Invalid identifier and missing type reports
//   - Default-ordering violations located by record and field
//   - Duplicate record and field warnings
package diagnostic

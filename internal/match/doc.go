// Package match provides identifier normalization and edit-distance
// scoring, used to suggest the intended field for a misspelled name.
//
// Key functions:
//   - NormalizeIdent: case-folds identifiers and drops separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest candidate above a similarity threshold
package match

package diagnostic

// Diagnostic codes reported while checking record declarations.
const (
	CodeInvalidName     = "invalid-name"
	CodeMissingType     = "missing-type"
	CodeInvalidType     = "invalid-type"
	CodeInvalidDefault  = "invalid-default"
	CodeDuplicateRecord = "duplicate-record"
	CodeDuplicateField  = "duplicate-field"
	CodeReservedField   = "reserved-field"
	CodeDefaultOrdering = "default-ordering"
	CodeConflictDefault = "conflicting-default"
	CodeEmptyRecord     = "empty-record"
)

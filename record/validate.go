package record

// ValidateOrdering fails when a field without a default follows a field
// with one. The error names the first offending field.
func ValidateOrdering(class string, fs Fields) error {
	seenDefault := false

	for _, f := range fs.list {
		if f.HasDefault() {
			seenDefault = true
			continue
		}

		if seenDefault {
			return newError(KindOrdering, class, []string{f.Name},
				"%s: non-default argument '%s' follows default argument", class, f.Name)
		}
	}

	return nil
}

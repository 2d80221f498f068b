// Package main provides the CLI entrypoint for record-generator.
//
// record-generator derives simple record types from declarations:
//   - YAML declaration files listing records and their ordered fields
//   - Go structs marked with a "record:generate" doc comment
//
// For each record it generates a constructor taking positional and named
// arguments, with defaults and argument checks, and a String method.
package main

import "record-generator/cmd/record-generator/cmd"

func main() {
	cmd.Execute()
}

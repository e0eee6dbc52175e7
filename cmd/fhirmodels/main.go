// Package main implements the fhirmodels CLI: it lists and describes the
// FHIR R5 type metadata, exports StructureDefinitions and builds and
// validates example resources.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

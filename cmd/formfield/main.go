// Command formfield renders Semantic UI form fields from form documents,
// OpenAPI operations and the built-in example catalogue.
package main

import (
	"fmt"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	root := newRootCommand(os.Stdout, newSurveyPrompter())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "formfield:", err)
		os.Exit(1)
	}
}

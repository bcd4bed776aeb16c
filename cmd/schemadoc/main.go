// Command schemadoc renders the schema document of the example catalog DTOs,
// serves it with Swagger UI, or validates a JSON payload against one of them.
//
//	schemadoc --format yaml
//	schemadoc serve
//	schemadoc check CreateProductDto payload.json
package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev"

var (
	errRejected = errors.New("payload rejected")
	errUsage    = errors.New("invalid usage")
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}

// Command colibri-verify is a thin convenience wrapper around
// internal/verify's dispatcher: it loads a chain-registry file and a
// sync_data blob (both required), runs one verify call, and prints the
// verdict.
// It is not the product — the real host wires its own HTTP/caching layer
// around the dispatcher per spec.md §1 — but it is enough surface to
// exercise the dispatcher end-to-end.
package main

import (
	"os"

	"github.com/corpus-core/colibri-stateless-sub002/cmd/colibri-verify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

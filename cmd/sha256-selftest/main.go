// sha256-selftest checks the SHA-256 engine against FIPS 180-4 and NIST CAVP
// known-answer vectors and exits non-zero if any digest does not match.
//
// Usage:
//
//	sha256-selftest [--extended] [--chunk-size N] [--verbose]
//
// Logging follows the PION_LOG_* environment variables (for example
// PION_LOG_DEBUG=selftest).
package main

import (
	"fmt"
	"os"

	"github.com/backkem/sha256/cmd/sha256-selftest/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cmd.ExitCode(err))
}

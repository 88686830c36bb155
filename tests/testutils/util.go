// Package testutils provides test infrastructure for asciify integration tests.
package testutils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/agar/pkg/agar"
)

// BinaryEnv overrides the binary under test, e.g. to run the suite against an installed release.
const BinaryEnv = "ASCIIFY_BINARY"

// BinaryPath returns the asciify binary the CLI tests drive: $ASCIIFY_BINARY when set,
// otherwise bin/asciify at the project root.
func BinaryPath() string {
	if path := os.Getenv(BinaryEnv); path != "" {
		return path
	}

	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))

	return filepath.Join(projectRoot, "bin", "asciify")
}

// Setup creates a test case configured to run the asciify binary.
func Setup() *test.Case {
	return agar.Setup(BinaryPath())
}

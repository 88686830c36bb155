package tests_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// Script fixtures shared by the CLI tests.
const (
	scriptWithSymbols = "Write-Host \"✓ Build passed\"\n$next = \"deploy → prod\"\n"
	scriptFixed       = "Write-Host \"[OK] Build passed\"\n$next = \"deploy -> prod\"\n"
	scriptPlain       = "Get-ChildItem -Recurse\n"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectNotContains returns a comparator verifying the output does not contain a substring.
func expectNotContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("unexpected substring %q found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectFile returns a comparator verifying a file on disk holds exactly the given content.
func expectFile(path, content string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		data, err := os.ReadFile(path) //nolint:gosec // test fixture path
		if err != nil {
			testing.Log(fmt.Sprintf("reading %s: %v", path, err))
			testing.Fail()

			return
		}

		if string(data) != content {
			testing.Log(fmt.Sprintf("file %s holds %q, want %q", path, data, content))
			testing.Fail()
		}
	}
}

// expectBackups returns a comparator verifying how many backup files sit next to path.
func expectBackups(path string, count int) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		matches, err := filepath.Glob(path + ".backup_*")
		if err != nil || len(matches) != count {
			testing.Log(fmt.Sprintf("found backups %v for %s, want %d", matches, path, count))
			testing.Fail()
		}
	}
}

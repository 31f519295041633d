package e2e

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildBinary builds the unmangle binary in dir and returns its path.
func buildBinary(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "unmangle.exe")
	// Tests run from tests/e2e.
	buildCmd := exec.Command("go", "build", "-o", bin, "../../cmd/unmangle")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build unmangle: %v\n%s", err, string(out))
	}
	return bin
}

// runCmd runs name with stdin and returns stdout, stderr and the exit code.
func runCmd(t *testing.T, dir string, stdin string, name string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return stdout.String(), stderr.String(), 0
	case errors.As(err, &exitErr):
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	default:
		t.Fatalf("Command %s %v failed to start: %v", name, args, err)
		return "", "", -1
	}
}

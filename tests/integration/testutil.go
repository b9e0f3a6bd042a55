// Package integration provides end-to-end tests for the formsource library
// and CLI.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// formsourceBin is the path to the built formsource binary.
	formsourceBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated environment for one CLI test: its own config
// directory and a working directory for task files.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build formsource: %v", buildErr)
	}
	if formsourceBin == "" {
		t.Fatal("formsource binary not built")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	return &TestEnv{t: t, TempDir: tempDir, ConfigDir: configDir}
}

// Run executes the formsource binary with the environment's config directory
// and returns stdout, stderr, and the exit code.
func (e *TestEnv) Run(args ...string) (string, string, int) {
	e.t.Helper()

	full := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(formsourceBin, full...)
	cmd.Dir = e.TempDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("run formsource: %v", err)
	}
	return stdout.String(), stderr.String(), code
}

// TaskFile returns the absolute path of a testdata task file.
func TaskFile(t *testing.T, name string) string {
	t.Helper()
	root, err := FindProjectRoot()
	if err != nil {
		t.Fatalf("find project root: %v", err)
	}
	return filepath.Join(root, "tests", "integration", "testdata", name)
}

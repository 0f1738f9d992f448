//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binPath = "bin/metricard"
	pkg     = "github.com/dkoosis/metricard"
)

// Default target - build the binary
var Default = Build

// Build builds the metricard binary with version information stamped in.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, "./cmd/metricard")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet, then golangci-lint when it is installed.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// QA runs all quality assurance checks
func QA() {
	mg.SerialDeps(Lint, Test)
}

// Demo renders the sample deck with every theme.
func Demo() error {
	mg.Deps(Build)
	for _, theme := range []string{"default", "orca", "mono"} {
		if err := sh.RunV(binPath, "--format", "terminal", "--theme", theme, "examples/cards.yaml"); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binDir)
}

func ldflags() string {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	vars := map[string]string{
		"Version":    version,
		"CommitHash": commit,
		"BuildDate":  time.Now().UTC().Format(time.RFC3339),
	}
	parts := make([]string, 0, len(vars))
	for k, v := range vars {
		parts = append(parts, fmt.Sprintf("-X %s/internal/version.%s=%s", pkg, k, v))
	}
	return strings.Join(parts, " ")
}

//go:build mage

// Package main contains Mage build targets for recipebox developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

// commands maps binary names to their main packages.
var commands = map[string]string{
	"recipebox-server": "./cmd/server",
	"recipebox":        "./cmd/recipebox",
}

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the server and the terminal client into bin/.
func Build() error {
	mg.Deps(Vet)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	for name, pkg := range commands {
		out := filepath.Join(binDir, name)
		if err := sh.RunV("go", "build", "-o", out, pkg); err != nil {
			return fmt.Errorf("go build %s: %w", pkg, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests. Integration tests that need Docker are skipped.
func Test() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Integration runs every test, including the Redis cache tests in containers.
func Integration() error {
	return sh.RunV("go", "test", "-count=1", "./...")
}

// Serve starts the web server with the local config.
func Serve() error {
	return sh.RunWithV(map[string]string{"RECIPEBOX_SERVER_ENVIRONMENT": "development"}, "go", "run", "./cmd/server")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

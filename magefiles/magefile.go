//go:build mage

// Package main provides build targets for monolith-service using Mage.
//
// Usage:
//
//	mage build            Compile the server binary to bin/
//	mage test             Run all tests (unit + container-backed integration)
//	mage testUnit         Run tests with -short, skipping testcontainers suites
//	mage lint             Run golangci-lint
//	mage run              Build and start the server with the local config
//	mage migrate          Build and create the tables
//	mage clean            Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo       = "go"
	binaryName  = "monolith-service"
	binaryDir   = "bin"
	cmdDir      = "./cmd/monolith-service"
	versionPkg  = "monolith-service/internal/app"
	defaultPort = "8080"
)

// Build compiles the server binary to bin/ with version metadata.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", binaryPath(), cmdDir)
}

// Test runs all tests, including the ones that start containers.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// TestUnit runs tests with -short; container-backed suites skip themselves.
func TestUnit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Run builds the binary and starts the server against configs/config.local.yaml.
func Run() error {
	mg.Deps(Build)
	env := map[string]string{"ENV": "local"}
	if os.Getenv("PORT") == "" {
		env["PORT"] = defaultPort
	}
	return sh.RunWithV(env, binaryPath(), "serve")
}

// Migrate builds the binary and creates the tables.
func Migrate() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "migrate")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}

func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}
	flags := []string{
		fmt.Sprintf("-X '%s.Version=%s'", versionPkg, version),
		fmt.Sprintf("-X '%s.GitCommit=%s'", versionPkg, strings.TrimSpace(commit)),
		fmt.Sprintf("-X '%s.BuildTime=%s'", versionPkg, time.Now().UTC().Format(time.RFC3339)),
	}
	return strings.Join(flags, " ")
}

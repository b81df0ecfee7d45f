// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

// Package main contains Mage build targets for protein-info developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "protein-info"
	cmdPkg  = "./cmd/protein-info"
)

// Default is the target run by a bare "mage".
var Default = Build

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	mg.Deps(Vet)
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + gitVersion()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Stats prints Go production and test line counts per package.
func Stats() error {
	prod, test, err := countGoLines(".")
	if err != nil {
		return err
	}

	var prodTotal, testTotal int
	for _, dir := range sortedKeys(prod, test) {
		fmt.Printf("%-28s %6d %6d\n", strings.TrimPrefix(dir, "./"), prod[dir], test[dir])
		prodTotal += prod[dir]
		testTotal += test[dir]
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodTotal)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testTotal)
	return nil
}

func gitVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}

// countGoLines counts non-blank Go lines per directory, skipping hidden and
// underscore-prefixed directories the go tool also ignores.
func countGoLines(root string) (prod, test map[string]int, err error) {
	prod, test = map[string]int{}, map[string]int{}
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := nonBlankLines(data)
		dir := "./" + filepath.Dir(path)
		if strings.HasSuffix(name, "_test.go") {
			test[dir] += n
		} else {
			prod[dir] += n
		}
		return nil
	})
	return prod, test, err
}

func nonBlankLines(data []byte) int {
	n := 0
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		if strings.TrimSpace(s.Text()) != "" {
			n++
		}
	}
	return n
}

func sortedKeys(maps ...map[string]int) []string {
	seen := map[string]bool{}
	var keys []string
	for _, m := range maps {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

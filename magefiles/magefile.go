//go:build mage

// Package main contains Mage build targets for funnel-normalize developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "funnel-normalize"
	cmdPkg  = "./cmd/funnel-normalize"

	sampleDir    = "testdata"
	sampleInput  = "testdata/simplify-export.csv"
	sampleOutput = "testdata/out/normalized.csv"
)

// sampleExport is a small Simplify-style export exercising every alias
// family and date format.
const sampleExport = "\ufeffCompany Name,Job Title,Location,Date Applied,Status,Job URL,Notes\r\n" +
	"Acme,Engineer,Remote,01/15/2024,,https://acme.example/jobs/1,\r\n" +
	"Globex,Analyst,\"Austin, TX\",\"Feb 3, 2024\",Interviewing,,referral\r\n" +
	"Initech,SRE,,2024-03-09T17:04:00Z,Rejected,,\r\n" +
	"Umbrella,Data Engineer,Boston,\"March 12, 2024\",,,\r\n" +
	"Hooli,PM,,last week,Offer,,\r\n"

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample writes a fixture export to testdata/ and normalizes it with the
// freshly built binary.
func Sample() error {
	mg.Deps(Build)

	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	if err := os.WriteFile(sampleInput, []byte(sampleExport), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", sampleInput, err)
	}
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "--input", sampleInput, "--output", sampleOutput); err != nil {
		return err
	}
	return sh.RunV(bin, "preview", sampleInput)
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), "_") || info.Name() == binDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}

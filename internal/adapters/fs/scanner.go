// Package fs provides filesystem adapters for import scanning, specifier
// resolution and ambient declaration discovery.
package fs

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Textual import extraction. This is a deliberately lossy approximation of
// the compiler's module resolution: it finds specifier strings, it does not
// parse. Specifiers inside block comments or template strings may slip
// through; the resolver simply fails to match them on disk.
var (
	// import x from 'm'; import {a} from "m"; export * from 'm'; import type {T} from 'm'
	fromClauseRe = regexp.MustCompile(`(?m)^\s*(?:import|export)\b[^'"\n]*?\bfrom\s*['"]([^'"]+)['"]`)
	// import 'm';
	sideEffectRe = regexp.MustCompile(`(?m)^\s*import\s*['"]([^'"]+)['"]`)
	// import('m'), require('m')
	callRe = regexp.MustCompile(`\b(?:import|require)\s*\(\s*['"]([^'"]+)['"]\s*\)`)
	// /// <reference path="m" />
	referenceRe = regexp.MustCompile(`(?m)^\s*///\s*<reference\s+path\s*=\s*['"]([^'"]+)['"]`)
)

// Scanner extracts module specifiers from source text.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanImports returns every import-like specifier found in src, de-duplicated
// in order of first appearance. Triple-slash reference paths are always
// file-relative, so ones without an explicit prefix are rewritten to ./ form
// before the resolver sees them.
func (s *Scanner) ScanImports(src []byte) []string {
	var specs []string
	for _, re := range []*regexp.Regexp{fromClauseRe, sideEffectRe, callRe, referenceRe} {
		for _, match := range re.FindAllSubmatch(src, -1) {
			spec := string(match[1])
			if spec == "" {
				continue
			}
			if re == referenceRe && !isRelativeForm(spec) {
				spec = "./" + spec
			}
			if !slices.Contains(specs, spec) {
				specs = append(specs, spec)
			}
		}
	}
	return specs
}

func isRelativeForm(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") ||
		strings.HasPrefix(spec, "/") || filepath.IsAbs(spec)
}

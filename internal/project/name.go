// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Project name derivation

package project

import (
	"regexp"
	"strings"
)

// separatorRuns matches maximal runs of whitespace or underscores
var separatorRuns = regexp.MustCompile(`[\s_]+`)

// Derive computes the canonical project name from a prefix and the working
// directory name: lowercase, whitespace/underscore runs collapsed to single
// hyphens, prefixed with "<prefix>-". Other punctuation passes through.
func Derive(prefix, dirName string) string {
	sanitized := separatorRuns.ReplaceAllString(strings.ToLower(dirName), "-")
	return prefix + "-" + sanitized
}

// ModuleName converts a hyphenated project name into a Python package
// identifier by replacing hyphens with underscores.
func ModuleName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

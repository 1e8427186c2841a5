// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Name derivation tests

package project_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/sony-level/pyboot/internal/project"
)

func TestDerive(t *testing.T) {
	cases := []struct {
		prefix string
		dir    string
		want   string
	}{
		{"acme", "My Project", "acme-my-project"},
		{"x", "already-hyphenated", "x-already-hyphenated"},
		{"acme", "my_project", "acme-my-project"},
		{"acme", "My   Mixed__Name", "acme-my-mixed-name"},
		{"acme", "UPPER", "acme-upper"},
	}

	for _, tc := range cases {
		got := project.Derive(tc.prefix, tc.dir)
		if got != tc.want {
			t.Errorf("Derive(%q, %q) = %q, want %q", tc.prefix, tc.dir, got, tc.want)
		}
	}
}

func TestDerive_CollapsesSeparatorRuns(t *testing.T) {
	// Whitespace/underscore runs must never produce consecutive hyphens
	dirs := []string{"a b", "a  b", "a_b", "a __ b", "a\t_\tb", "one two_three  four"}
	pattern := regexp.MustCompile(`^acme-[a-z0-9-]+$`)

	for _, dir := range dirs {
		got := project.Derive("acme", dir)
		if !pattern.MatchString(got) {
			t.Errorf("Derive(%q) = %q, want match of %s", dir, got, pattern)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Derive(%q) = %q, contains consecutive hyphens", dir, got)
		}
	}
}

func TestDerive_EmptyPrefix(t *testing.T) {
	// Empty prefix is accepted and yields a leading hyphen
	if got := project.Derive("", "proj"); got != "-proj" {
		t.Errorf("Derive(\"\", \"proj\") = %q, want \"-proj\"", got)
	}
}

func TestModuleName(t *testing.T) {
	if got := project.ModuleName("acme-my-project"); got != "acme_my_project" {
		t.Errorf("ModuleName() = %q, want acme_my_project", got)
	}
}

func TestParseVisibility(t *testing.T) {
	if vis, ok := project.ParseVisibility("public"); !ok || vis != project.VisibilityPublic {
		t.Errorf("ParseVisibility(public) = %v, %v", vis, ok)
	}
	if vis, ok := project.ParseVisibility("private"); !ok || vis != project.VisibilityPrivate {
		t.Errorf("ParseVisibility(private) = %v, %v", vis, ok)
	}

	// Invalid values report ok=false and fall back to private
	if vis, ok := project.ParseVisibility("internal"); ok || vis != project.VisibilityPrivate {
		t.Errorf("ParseVisibility(internal) = %v, %v, want private, false", vis, ok)
	}
}

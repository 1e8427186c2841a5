// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Prerequisite checker tests

package prereq_test

import (
	"context"
	"strings"
	"testing"

	"github.com/sony-level/pyboot/internal/exec"
	"github.com/sony-level/pyboot/internal/prereq"
)

func TestCheckTool(t *testing.T) {
	mock := &exec.MockRunner{
		Paths: map[string]string{"git": "/usr/bin/git"},
		Responses: []exec.MockResponse{
			{Match: "git --version", Result: exec.Result{Stdout: "git version 2.43.0\n"}},
		},
	}
	checker := prereq.NewChecker(mock)

	result := checker.CheckTool(context.Background(), "git")
	if !result.Found {
		t.Fatal("CheckTool(git) not found")
	}
	if result.Path != "/usr/bin/git" {
		t.Errorf("Path = %q", result.Path)
	}
	if result.Version != "git version 2.43.0" {
		t.Errorf("Version = %q", result.Version)
	}
}

func TestCheckTool_Alternative(t *testing.T) {
	// python3 missing, plain python available
	mock := &exec.MockRunner{Paths: map[string]string{"python": "/usr/bin/python"}}
	checker := prereq.NewChecker(mock)

	result := checker.CheckTool(context.Background(), "python3")
	if !result.Found {
		t.Error("CheckTool(python3) should fall back to the python alternative")
	}
}

func TestVerify_ReportsMissingRequired(t *testing.T) {
	// git present, python entirely absent; gh and pip are optional
	mock := &exec.MockRunner{Paths: map[string]string{"git": "/usr/bin/git"}}
	checker := prereq.NewChecker(mock)

	missing := checker.Verify(context.Background())
	if len(missing) != 1 || missing[0] != "python3" {
		t.Errorf("Verify() = %v, want [python3]", missing)
	}

	guide := checker.FormatMissing(missing)
	if !strings.Contains(guide, "Install Python") {
		t.Errorf("FormatMissing() missing install guide:\n%s", guide)
	}
}

func TestVerify_AllPresent(t *testing.T) {
	mock := &exec.MockRunner{Paths: map[string]string{
		"git":     "/usr/bin/git",
		"python3": "/usr/bin/python3",
	}}
	checker := prereq.NewChecker(mock)

	if missing := checker.Verify(context.Background()); len(missing) != 0 {
		t.Errorf("Verify() = %v, want none", missing)
	}
}

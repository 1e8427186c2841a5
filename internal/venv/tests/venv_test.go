// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Provisioner tests

package venv_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sony-level/pyboot/internal/config"
	"github.com/sony-level/pyboot/internal/exec"
	"github.com/sony-level/pyboot/internal/venv"
)

func defaultConfig(t *testing.T, dir string) *config.Config {
	t.Helper()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return cfg
}

func TestProvision(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig(t, dir)
	mock := &exec.MockRunner{}
	p := venv.New(mock, cfg, dir, io.Discard)

	if err := p.Provision(context.Background(), "acme-proj"); err != nil {
		t.Fatalf("Provision() error = %v", err)
	}

	pip := p.PipPath()
	want := []string{
		"python3 -m venv .venv",
		pip + " install --upgrade pip",
		pip + " install -r requirements-dev.txt",
	}
	got := mock.CallLines()
	if len(got) != len(want) {
		t.Fatalf("ran %d commands %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	reqs, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	if err != nil {
		t.Fatalf("requirements.txt not written: %v", err)
	}
	if string(reqs) != "# Project dependencies\n" {
		t.Errorf("requirements.txt = %q", reqs)
	}

	dev, err := os.ReadFile(filepath.Join(dir, "requirements-dev.txt"))
	if err != nil {
		t.Fatalf("requirements-dev.txt not written: %v", err)
	}
	for _, tool := range []string{"pytest", "black", "flake8", "mypy"} {
		if !strings.Contains(string(dev), tool+"\n") {
			t.Errorf("requirements-dev.txt missing %s:\n%s", tool, dev)
		}
	}
}

func TestProvision_VenvCreationFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig(t, dir)
	mock := &exec.MockRunner{
		Responses: []exec.MockResponse{
			{Match: "python3 -m venv", Result: exec.Result{ExitCode: 1}, Err: errors.New("venv module not found")},
		},
	}
	p := venv.New(mock, cfg, dir, io.Discard)

	err := p.Provision(context.Background(), "acme-proj")
	if err == nil {
		t.Fatal("Provision() error = nil, want fatal failure")
	}
	if !strings.Contains(err.Error(), "venv module not found") {
		t.Errorf("error = %v, want underlying tool error surfaced", err)
	}

	// The run aborts immediately: no pip invocations
	if mock.Called(p.PipPath()) {
		t.Error("pip was invoked after venv creation failed")
	}
}

func TestProvision_PipInstallFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig(t, dir)
	mock := &exec.MockRunner{}
	p := venv.New(mock, cfg, dir, io.Discard)
	mock.Responses = []exec.MockResponse{
		{Match: p.PipPath() + " install -r", Result: exec.Result{ExitCode: 1}, Err: errors.New("no network")},
	}

	if err := p.Provision(context.Background(), "acme-proj"); err == nil {
		t.Fatal("Provision() error = nil, want fatal failure")
	}
}

func TestActivateHint(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig(t, dir)
	p := venv.New(&exec.MockRunner{}, cfg, dir, io.Discard)

	hint := p.ActivateHint()
	if !strings.Contains(hint, ".venv") || !strings.Contains(hint, "activate") {
		t.Errorf("ActivateHint() = %q", hint)
	}
}

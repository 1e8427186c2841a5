// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Mock runner for tests

package exec

import (
	"context"
	"strings"
	"sync"
)

// MockResponse is a canned response matched against a command-line prefix
type MockResponse struct {
	Match  string // Prefix of "name arg arg ..." that selects this response
	Result Result
	Err    error
}

// MockRunner records every command and serves canned responses.
// Commands with no matching response succeed with an empty result.
type MockRunner struct {
	Responses []MockResponse
	Paths     map[string]string // LookPath results; missing keys are not found

	mu    sync.Mutex
	Calls []Command
}

// Run records the call and returns the first matching canned response
func (m *MockRunner) Run(_ context.Context, c Command) (*Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, c)
	m.mu.Unlock()

	line := c.Line()
	for _, resp := range m.Responses {
		if strings.HasPrefix(line, resp.Match) {
			result := resp.Result
			return &result, resp.Err
		}
	}
	return &Result{}, nil
}

// LookPath resolves against the configured Paths map
func (m *MockRunner) LookPath(name string) (string, bool) {
	path, ok := m.Paths[name]
	return path, ok
}

// CallLines returns the recorded command lines in order
func (m *MockRunner) CallLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		lines[i] = c.Line()
	}
	return lines
}

// Called reports whether any recorded command line starts with prefix
func (m *MockRunner) Called(prefix string) bool {
	for _, line := range m.CallLines() {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

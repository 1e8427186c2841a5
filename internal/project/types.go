// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Project types and invocation options

package project

// Visibility is the requested access classification for a hosted repository
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ParseVisibility validates a visibility value. Invalid values are reported
// via ok=false; callers coerce to private rather than failing.
func ParseVisibility(s string) (Visibility, bool) {
	switch Visibility(s) {
	case VisibilityPublic:
		return VisibilityPublic, true
	case VisibilityPrivate:
		return VisibilityPrivate, true
	}
	return VisibilityPrivate, false
}

// Options holds the per-run invocation options, derived once from flags
type Options struct {
	Prefix     string
	UseGitHub  bool
	Visibility Visibility
}

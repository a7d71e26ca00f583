package commit

import (
	"fmt"
	"strings"
)

// Labels builds the select menu for mode, in taxonomy order.
func Labels(mode Mode) []string {
	labels := make([]string, 0, len(taxonomy))
	for _, t := range taxonomy {
		labels = append(labels, t.Label(mode))
	}
	return labels
}

// ParseType maps a menu label from either mode back to its Type.
func ParseType(label string) (Type, bool) {
	candidate := strings.TrimSpace(label)
	for _, t := range taxonomy {
		if candidate == string(t) || candidate == t.Label(ModeEmoji) {
			return t, true
		}
	}
	return "", false
}

// DefaultIndex picks the menu entry to pre-highlight for a cached type.
// An exact label match wins, then a match on the underlying type, then 0.
func DefaultIndex(labels []string, cached string) int {
	for i, label := range labels {
		if label == cached {
			return i
		}
	}
	want, ok := ParseType(cached)
	if !ok {
		return 0
	}
	for i, label := range labels {
		if t, ok := ParseType(label); ok && t == want {
			return i
		}
	}
	return 0
}

// Format assembles the commit subject verbatim as type(project): message.
func Format(commitType, project, message string) string {
	return fmt.Sprintf("%s(%s): %s", commitType, project, message)
}

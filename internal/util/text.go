package util

import "strings"

// TrimLines splits and removes empty lines, returning a cleaned slice.
func TrimLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) != "" {
			cleaned = append(cleaned, line)
		}
	}
	return cleaned
}

// Indent prefixes every line and joins them with newlines.
func Indent(lines []string, prefix string) string {
	if len(lines) == 0 {
		return ""
	}
	return prefix + strings.Join(lines, "\n"+prefix)
}

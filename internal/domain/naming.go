package domain

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizePathName converts a repository path into a single directory name.
// - Alphanumeric, underscores, hyphens, and periods are kept
// - Spaces, parentheses, and slashes become underscores (consecutive ones collapsed)
// - Other special characters are removed
func SanitizePathName(path string) string {
	var result strings.Builder
	lastWasUnderscore := false

	for _, r := range path {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '.' {
			result.WriteRune(r)
			lastWasUnderscore = false
		} else if r == '_' {
			result.WriteRune('_')
			lastWasUnderscore = true
		} else if unicode.IsSpace(r) || r == '(' || r == ')' || r == '/' || r == '\\' {
			if !lastWasUnderscore && result.Len() > 0 {
				result.WriteRune('_')
				lastWasUnderscore = true
			}
		}
	}

	str := strings.TrimRight(result.String(), "_")
	// ".." would escape the merge directory
	return strings.ReplaceAll(str, "..", ".")
}

// SanitizeMergeCmd derives the name used for a merge command's output file:
// the base name of the command with spaces replaced by underscores
func SanitizeMergeCmd(mergeCmd string) string {
	name := filepath.Base(strings.TrimSpace(mergeCmd))
	return strings.ReplaceAll(name, " ", "_")
}

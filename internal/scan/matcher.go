// Package scan implements the traversal core of repotxt: pattern-based
// exclusion, text/binary classification, and recursive tree construction.
package scan

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns is the built-in exclusion list applied to every scan.
// Caller-supplied patterns are appended after these defaults.
var DefaultIgnorePatterns = []string{
	"*.pyc", "*.pyo", "*.pyd", "__pycache__", // Python
	"node_modules", "bower_components", // JavaScript
	".git", ".svn", ".hg", ".gitignore", // Version control
	"*.svg", "*.png", "*.jpg", "*.jpeg", "*.gif", // Images
	"venv", ".venv", "env", "*venv*", // Virtual environments
	".idea", ".vscode", // IDEs
	"*.log", "*.bak", "*.swp", "*.tmp", // Temporary files
	".DS_Store", // macOS
	"Thumbs.db", // Windows
	"build", "dist", // Build directories
	"*.egg-info", // Python egg info
	"*.so", "*.dylib", "*.dll", // Compiled libraries
}

// CombinedIgnorePatterns returns the default pattern set followed by the
// provided additional patterns. The defaults are copied so callers can never
// mutate the package-level list.
func CombinedIgnorePatterns(additionalPatterns []string) []string {
	combined := make([]string, 0, len(DefaultIgnorePatterns)+len(additionalPatterns))
	combined = append(combined, DefaultIgnorePatterns...)
	combined = append(combined, additionalPatterns...)
	return combined
}

// ShouldExclude reports whether the entry at entryPath should be excluded
// from a scan rooted below basePath. Each pattern is matched with shell-style
// wildcard semantics against both the path relative to basePath and the
// entry's base name. Directories additionally get a case-insensitive base
// name check, so a pattern such as "venv" also excludes a directory named
// "VENV"; file matching stays case-sensitive. Pure predicate, no side effects.
func ShouldExclude(entryPath string, basePath string, isDirectory bool, ignorePatterns []string) bool {
	relativePath, relativeError := filepath.Rel(basePath, entryPath)
	if relativeError != nil {
		relativePath = entryPath
	}
	relativePath = filepath.ToSlash(relativePath)
	baseName := filepath.Base(entryPath)

	for _, patternValue := range ignorePatterns {
		if matchesPattern(patternValue, relativePath) || matchesPattern(patternValue, baseName) {
			return true
		}
		if isDirectory && (matchesPattern(patternValue, baseName) || matchesPattern(patternValue, strings.ToLower(baseName))) {
			return true
		}
	}
	return false
}

// matchesPattern evaluates a single glob pattern, treating malformed
// patterns as non-matching.
func matchesPattern(patternValue string, candidate string) bool {
	isMatched, matchError := filepath.Match(patternValue, candidate)
	return matchError == nil && isMatched
}

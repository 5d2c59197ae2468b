package utils

// DeduplicatePatterns removes duplicate patterns from a slice while
// preserving order. The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, patternValue := range patterns {
		if _, exists := encounteredPatterns[patternValue]; !exists {
			encounteredPatterns[patternValue] = struct{}{}
			result = append(result, patternValue)
		}
	}
	return result
}

package utils

// ContainsString checks if a string is present in a slice of strings
func ContainsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// DedupeStrings returns a copy of slice with duplicates removed,
// preserving first-occurrence order.
func DedupeStrings(slice []string) []string {
	seen := make(map[string]struct{}, len(slice))
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	return result
}

// RemoveString returns a copy of slice with all occurrences of item removed
func RemoveString(slice []string, item string) []string {
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if s != item {
			result = append(result, s)
		}
	}
	return result
}

// TruncateList returns at most max entries of slice plus the number of
// entries that were cut off. A max of zero or less means no truncation.
func TruncateList(slice []string, max int) ([]string, int) {
	if max <= 0 || len(slice) <= max {
		return slice, 0
	}
	return slice[:max], len(slice) - max
}

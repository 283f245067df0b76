package utils

import (
	"fmt"
	"strings"
)

// ArrayToCSV joins values with ", ", showing at most limit of them. A limit
// of zero or less shows all values.
func ArrayToCSV(values []string, limit int) string {
	if limit <= 0 || len(values) <= limit {
		return strings.Join(values, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(values[:limit], ", "), len(values)-limit)
}

// Plural returns "1 host" or "n hosts".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

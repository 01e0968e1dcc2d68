// Package weekday formats and validates ISO operating-day numbers
// (1=Monday .. 7=Sunday).
package weekday

import (
	"sort"
	"strings"
)

var names = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Name returns the English day name, or "" for an out-of-range number.
func Name(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return names[day]
}

// Valid reports whether days is a usable operating-day set: non-empty with
// every entry in 1..7.
func Valid(days []int) bool {
	if len(days) == 0 {
		return false
	}
	for _, d := range days {
		if d < 1 || d > 7 {
			return false
		}
	}
	return true
}

// Normalize dedupes and sorts a day set ascending. The input is unchanged.
func Normalize(days []int) []int {
	seen := make(map[int]bool, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

// Format renders a day set as "Monday, Wednesday, Friday", normalized first.
func Format(days []int) string {
	parts := make([]string, 0, len(days))
	for _, d := range Normalize(days) {
		if name := Name(d); name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

// Package input provides completion helpers for the typed time input.
package input

import "strings"

// MaxSuggestions is the number of completions shown under the input.
const MaxSuggestions = 4

// MatchingTimes returns the times that start with the typed prefix. A bare
// hour such as "9" also matches "09:..".
func MatchingTimes(input string, times []string) []string {
	prefix := strings.TrimSpace(input)
	if prefix == "" {
		return nil
	}
	alt := ""
	if len(prefix) == 1 || (len(prefix) >= 2 && prefix[1] == ':') {
		alt = "0" + prefix
	}

	matches := make([]string, 0, MaxSuggestions)
	for _, t := range times {
		if strings.HasPrefix(t, prefix) || (alt != "" && strings.HasPrefix(t, alt)) {
			matches = append(matches, t)
		}
	}
	return matches
}

// Autocomplete returns the first matching time and whether it exists.
func Autocomplete(input string, times []string) (string, bool) {
	matches := MatchingTimes(input, times)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

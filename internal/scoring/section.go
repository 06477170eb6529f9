package scoring

import "strings"

var sectionStopWords = []string{"bewerbung", "kontakt", "über uns", "unternehmen"}

// ExtractSection pulls the section of a job ad that is anchored by one
// of the given keywords. Capture starts at the first line containing a
// keyword and ends at the first blank line after more than three
// captured lines, or at a line that reads like the start of another
// section. Without an anchor hit the first 300 characters of the whole
// text are returned, so callers always get something to score.
func ExtractSection(text string, keywords []string) string {
	lines := strings.Split(text, "\n")

	var sectionLines []string
	inSection := false

	for _, line := range lines {
		lineLower := strings.ToLower(line)

		if containsAny(lineLower, keywords) {
			inSection = true
			sectionLines = append(sectionLines, line)
			continue
		}

		if inSection {
			if strings.TrimSpace(line) == "" && len(sectionLines) > 3 {
				break
			}
			if containsAny(lineLower, sectionStopWords) {
				break
			}
			sectionLines = append(sectionLines, line)
		}
	}

	if len(sectionLines) == 0 {
		return Truncate(text, 300)
	}
	return strings.Join(sectionLines, "\n")
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Truncate cuts a string to at most n runes. German umlauts make
// byte-based slicing unsafe here.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Tail returns the last n runes of a string.
func Tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

// FirstLines returns the first n lines of a string.
func FirstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

package extract

import "strings"

// FindStartLine returns the index of the first line that begins with
// introducer followed by name as a whole identifier. Blank runs between the
// introducer's words and the name are accepted.
func FindStartLine(lines []string, introducer, name string) (int, bool) {
	words := append(strings.Fields(introducer), name)
	for i, line := range lines {
		if matchesWords(line, words) {
			return i, true
		}
	}
	return 0, false
}

// matchesWords reports whether line starts with words separated by spaces or
// tabs, with the last word not running into further identifier characters.
func matchesWords(line string, words []string) bool {
	rest := line
	for i, w := range words {
		if i > 0 {
			trimmed := strings.TrimLeft(rest, " \t")
			if len(trimmed) == len(rest) {
				return false
			}
			rest = trimmed
		}
		if !strings.HasPrefix(rest, w) {
			return false
		}
		rest = rest[len(w):]
	}
	return rest == "" || !isWordByte(rest[0])
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

package xstrings

import (
	"strings"
)

// SplitParagraph splits text into chunks of at most maxLength runes,
// breaking on whitespace where possible and keeping a newline at the split
// point with the preceding chunk. A single word longer than maxLength is
// kept whole.
func SplitParagraph(text string, maxLength int) []string {
	if maxLength <= 0 || len(text) == 0 {
		return []string{text}
	}

	var chunks []string
	remaining := []rune(text)

	for len(remaining) > 0 {
		if len(remaining) <= maxLength {
			chunks = append(chunks, string(remaining))
			break
		}

		splitIndex := maxLength
		for splitIndex > 0 && !isWhitespace(remaining[splitIndex]) {
			splitIndex--
		}

		// no whitespace before the limit: look forward instead
		if splitIndex == 0 {
			splitIndex = maxLength
			for splitIndex < len(remaining) && !isWhitespace(remaining[splitIndex]) {
				splitIndex++
			}
			if splitIndex == len(remaining) {
				chunks = append(chunks, string(remaining))
				break
			}
		}

		chunk := string(remaining[:splitIndex])
		if remaining[splitIndex] == '\n' {
			chunk += "\n"
			splitIndex++
		}
		chunks = append(chunks, chunk)

		remaining = []rune(strings.TrimLeftFunc(string(remaining[splitIndex:]), isWhitespace))
	}

	return chunks
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

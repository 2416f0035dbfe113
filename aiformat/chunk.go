package aiformat

import "strings"

// SplitChunks splits text into pieces of at most maxChars bytes, cutting at
// whitespace boundaries where possible. Empty input yields no chunks.
//
// Each cut prefers the last newline strictly inside the window, then the
// last space, and only hard-splits mid-token when a single run longer than
// the limit leaves no choice. The separator run consumed at each boundary
// is not duplicated into either chunk, so joining the chunks with single
// newlines reproduces the original words in order.
func SplitChunks(text string, maxChars int) []string {
	if text == "" || maxChars <= 0 {
		return nil
	}

	var chunks []string
	pos := 0
	length := len(text)
	for pos < length {
		end := pos + maxChars
		if end > length {
			end = length
		}

		splitAt := end
		if end < length {
			// A boundary found exactly at pos would produce an empty chunk,
			// so it counts as not found.
			if i := strings.LastIndexByte(text[pos:end], '\n'); i > 0 {
				splitAt = pos + i
			} else if i := strings.LastIndexByte(text[pos:end], ' '); i > 0 {
				splitAt = pos + i
			} else if splitAt = hardCut(text, end); splitAt <= pos {
				// Limit smaller than one rune: tear the rune rather than stall.
				splitAt = end
			}
		}

		chunks = append(chunks, text[pos:splitAt])
		pos = splitAt
		for pos < length && (text[pos] == '\n' || text[pos] == ' ') {
			pos++
		}
	}
	return chunks
}

// hardCut backs a forced mid-token cut off to the nearest rune start so a
// multi-byte character is never torn in half.
func hardCut(text string, at int) int {
	for at > 0 && text[at]&0xC0 == 0x80 {
		at--
	}
	return at
}

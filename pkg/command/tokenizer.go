package command

import "strings"

// SplitCommand separates a raw input line into the command token and the
// argument remainder. Both are trimmed; an all-whitespace line yields an
// empty command token.
func SplitCommand(line string) (name, rest string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	return line, ""
}

// Tokenize splits the argument remainder into at most n tokens. A
// double-quoted span, including its quotes, is one token; unquoted runs split
// on whitespace. When the limit is reached the final token absorbs the rest
// of the text unsplit, so a trailing free-text argument keeps its spaces.
// n <= 0 means no limit.
func Tokenize(rest string, n int) []string {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil
	}
	var tokens []string
	i := 0
	for i < len(rest) {
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i >= len(rest) {
			break
		}
		if n > 0 && len(tokens) == n-1 {
			tokens = append(tokens, strings.TrimSpace(rest[i:]))
			return tokens
		}
		var tok string
		if rest[i] == '"' {
			if j := strings.IndexByte(rest[i+1:], '"'); j >= 0 {
				end := i + 1 + j + 1
				tok, i = rest[i:end], end
			} else {
				// Unterminated quote: the span runs to end of line.
				tok, i = rest[i:], len(rest)
			}
		} else {
			j := i
			for j < len(rest) && !isSpace(rest[j]) {
				j++
			}
			tok, i = rest[i:j], j
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

package rdf

import "strings"

const (
	directiveAtPrefix = "@prefix"
	directivePrefix   = "PREFIX"
	directiveAtBase   = "@base"
	directiveBase     = "BASE"
)

// stripComment removes a trailing # comment, ignoring # characters
// inside string literals (short and triple quoted) and IRIs.
func stripComment(line string) string {
	inString := false
	stringQuote := byte(0)
	longString := false
	inIRI := false

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if inString {
			if ch == '\\' {
				i++
				continue
			}
			if ch == stringQuote {
				if longString {
					if i+2 < len(line) && line[i+1] == stringQuote && line[i+2] == stringQuote {
						inString = false
						longString = false
						i += 2
					}
				} else {
					inString = false
				}
			}
			continue
		}
		if inIRI {
			if ch == '>' {
				inIRI = false
			}
			continue
		}

		switch {
		case ch == '"' || ch == '\'':
			inString = true
			stringQuote = ch
			if i+2 < len(line) && line[i+1] == ch && line[i+2] == ch {
				longString = true
				i += 2
			}
		case ch == '<':
			inIRI = true
		case ch == '#':
			if i > 0 && line[i-1] == '\\' {
				// PN_LOCAL escape, not a comment.
				continue
			}
			return line[:i]
		}
	}
	return line
}

// isStatementComplete reports whether stmt ends with a top level '.'
// outside strings, IRIs, collections and property lists.
func isStatementComplete(stmt string) bool {
	inString := false
	stringQuote := byte(0)
	longString := false
	inIRI := false
	bracketDepth := 0
	parenDepth := 0

	for i := 0; i < len(stmt); i++ {
		ch := stmt[i]

		if inString {
			if ch == '\\' {
				i++
				continue
			}
			if ch == stringQuote {
				if longString {
					if i+2 < len(stmt) && stmt[i+1] == stringQuote && stmt[i+2] == stringQuote {
						inString = false
						longString = false
						i += 2
					}
				} else {
					inString = false
				}
			}
			continue
		}
		if inIRI {
			if ch == '>' && (i == 0 || stmt[i-1] != '\\') {
				inIRI = false
			}
			continue
		}

		if ch == '<' {
			inIRI = true
			continue
		}
		if ch == '"' || ch == '\'' {
			if i+2 < len(stmt) && stmt[i+1] == ch && stmt[i+2] == ch {
				inString = true
				longString = true
				stringQuote = ch
				i += 2
			} else {
				inString = true
				longString = false
				stringQuote = ch
			}
			continue
		}

		switch ch {
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case '(':
			parenDepth++
		case ')':
			if parenDepth > 0 {
				parenDepth--
			}
		case '.':
			if bracketDepth == 0 && parenDepth == 0 {
				// A dot between a digit and a letter is part of a
				// local name, not a terminator.
				if i > 0 && stmt[i-1] >= '0' && stmt[i-1] <= '9' {
					next := byte(0)
					if i+1 < len(stmt) {
						next = stmt[i+1]
					}
					if (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') || next == '_' {
						break
					}
				}
				if strings.TrimSpace(stmt[i+1:]) == "" {
					return true
				}
			}
		}
	}
	return false
}

// endsInsideLongString reports whether stmt ends in the middle of an
// unterminated triple quoted string, meaning following physical lines
// belong to the string body. The second result is the quote character
// of that string.
func endsInsideLongString(stmt string) (bool, byte) {
	inString := false
	stringQuote := byte(0)
	longString := false

	for i := 0; i < len(stmt); i++ {
		ch := stmt[i]
		if inString {
			if ch == '\\' {
				i++
				continue
			}
			if ch == stringQuote {
				if longString {
					if i+2 < len(stmt) && stmt[i+1] == stringQuote && stmt[i+2] == stringQuote {
						inString = false
						longString = false
						i += 2
					}
				} else {
					inString = false
				}
			}
			continue
		}
		if ch == '"' || ch == '\'' {
			if i+2 < len(stmt) && stmt[i+1] == ch && stmt[i+2] == ch {
				inString = true
				longString = true
				stringQuote = ch
				i += 2
			} else {
				inString = true
				stringQuote = ch
			}
		}
	}
	if inString && longString {
		return true, stringQuote
	}
	return false, 0
}

// splitLongStringClose splits a line known to start inside a triple
// quoted string at the closing delimiter. body includes the delimiter;
// rest is everything after it. closed is false when the string
// continues past this line.
func splitLongStringClose(line string, quote byte) (body, rest string, closed bool) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case quote:
			if i+2 < len(line) && line[i+1] == quote && line[i+2] == quote {
				return line[:i+3], line[i+3:], true
			}
		}
	}
	return line, "", false
}

func parseAtPrefixDirective(line string, requireTerminator bool) (string, string, bool) {
	if !strings.HasPrefix(line, directiveAtPrefix) {
		return "", "", false
	}
	parts := strings.Fields(line)
	if len(parts) < 3 || !strings.HasSuffix(parts[1], ":") {
		return "", "", false
	}
	prefix := strings.TrimSuffix(parts[1], ":")
	if !isValidPrefixName(prefix) {
		return "", "", false
	}
	iriPart := parts[2]
	if !strings.HasPrefix(iriPart, "<") {
		return "", "", false
	}
	closeIdx := strings.Index(iriPart, ">")
	if closeIdx <= 0 {
		return "", "", false
	}
	if requireTerminator {
		if closeIdx+1 < len(iriPart) && iriPart[closeIdx+1] == '.' {
			// Terminator glued to the IRI.
		} else if len(parts) > 3 && parts[3] == "." {
			// Terminator as separate token.
		} else if !strings.HasSuffix(line, ".") {
			return "", "", false
		}
	}
	return prefix, iriPart[1:closeIdx], true
}

func parseBarePrefixDirective(line string) (string, string, bool) {
	if strings.HasPrefix(line, "@") || !strings.HasPrefix(strings.ToUpper(line), directivePrefix) {
		return "", "", false
	}
	parts := strings.Fields(line)
	if len(parts) < 3 || !strings.HasSuffix(parts[1], ":") {
		return "", "", false
	}
	prefix := strings.TrimSuffix(parts[1], ":")
	if !isValidPrefixName(prefix) {
		return "", "", false
	}
	iriPart := parts[2]
	if !strings.HasPrefix(iriPart, "<") {
		return "", "", false
	}
	closeIdx := strings.Index(iriPart, ">")
	if closeIdx <= 0 {
		return "", "", false
	}
	return prefix, iriPart[1:closeIdx], true
}

func parseAtBaseDirective(line string) (string, bool) {
	if !strings.HasPrefix(line, directiveAtBase) {
		return "", false
	}
	rest := strings.TrimSpace(line[len(directiveAtBase):])
	if !strings.HasPrefix(rest, "<") {
		return "", false
	}
	closeIdx := strings.Index(rest, ">")
	if closeIdx <= 0 {
		return "", false
	}
	return rest[1:closeIdx], true
}

func parseBaseDirective(line string) (string, bool) {
	if strings.HasPrefix(line, "@") || !strings.HasPrefix(strings.ToUpper(line), directiveBase) {
		return "", false
	}
	if strings.HasSuffix(strings.TrimSpace(line), ".") {
		return "", false
	}
	rest := strings.TrimSpace(line[len(directiveBase):])
	if !strings.HasPrefix(rest, "<") {
		return "", false
	}
	closeIdx := strings.Index(rest, ">")
	if closeIdx <= 0 {
		return "", false
	}
	return rest[1:closeIdx], true
}

func isValidPrefixName(prefix string) bool {
	if prefix == "" {
		return true
	}
	if prefix[0] == '.' || prefix[len(prefix)-1] == '.' {
		return false
	}
	first := prefix[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') || first == '_' || first >= 0x80) {
		return false
	}
	for i := 1; i < len(prefix); i++ {
		ch := prefix[i]
		if ch == '.' {
			continue
		}
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_' || ch == '-' || ch >= 0x80 {
			continue
		}
		return false
	}
	return true
}

func isValidLangTag(tag string) bool {
	if tag == "" {
		return false
	}

	// Optional base direction suffix from RDF 1.2.
	if strings.Contains(tag, "--") {
		if strings.Count(tag, "--") > 1 {
			return false
		}
		switch {
		case strings.HasSuffix(tag, "--ltr"):
			tag = strings.TrimSuffix(tag, "--ltr")
		case strings.HasSuffix(tag, "--rtl"):
			tag = strings.TrimSuffix(tag, "--rtl")
		default:
			return false
		}
	}

	parts := strings.Split(tag, "-")
	if len(parts[0]) < 1 || len(parts[0]) > 8 {
		return false
	}
	for i, part := range parts {
		if part == "" {
			return false
		}
		for j := 0; j < len(part); j++ {
			ch := part[j]
			if i == 0 {
				if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')) {
					return false
				}
			} else if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')) {
				return false
			}
		}
	}
	return true
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isValidPNLocalEscape(ch byte) bool {
	switch ch {
	case '_', '~', '.', '-', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=', '/', '?', '#', '@', '%':
		return true
	default:
		return false
	}
}

func isValidUnicodeCodePoint(codePoint rune) bool {
	if codePoint > 0x10FFFF {
		return false
	}
	if codePoint >= 0xD800 && codePoint <= 0xDFFF {
		return false
	}
	return true
}

// decodeUChar decodes 4 or 8 hex digits to a code point, -1 on error.
func decodeUChar(hexStr string) rune {
	if len(hexStr) != 4 && len(hexStr) != 8 {
		return -1
	}
	var codePoint rune
	for i := 0; i < len(hexStr); i++ {
		var digit rune
		switch ch := hexStr[i]; {
		case ch >= '0' && ch <= '9':
			digit = rune(ch - '0')
		case ch >= 'a' && ch <= 'f':
			digit = rune(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			digit = rune(ch-'A') + 10
		default:
			return -1
		}
		codePoint = codePoint*16 + digit
	}
	return codePoint
}

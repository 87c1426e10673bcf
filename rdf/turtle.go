package rdf

import (
	"fmt"
	"strings"
)

// genBlankPrefix namespaces parser-generated blank node labels so they
// cannot collide with document labels.
const genBlankPrefix = "genid-prttl-"

// turtleCursor parses a single complete Turtle statement. Triples
// expanded from collections and blank node property lists accumulate in
// expansionTriples and are appended after the statement's own triples.
type turtleCursor struct {
	input                 string
	pos                   int
	prefixes              map[string]string
	base                  string
	expansionTriples      []Triple
	nextBlank             func() BlankNode
	lastTermBlankNodeList bool
}

// parseStatement parses one "subject predicateObjectList ." statement
// and returns its triples in encounter order.
func (c *turtleCursor) parseStatement() ([]Triple, error) {
	subject, err := c.parseSubject()
	if err != nil {
		return nil, err
	}
	c.skipWS()
	// A blank node property list may stand alone without a predicate
	// object list following it.
	if c.lastTermBlankNodeList && c.pos < len(c.input) && c.input[c.pos] == '.' {
		c.pos++
		if err := c.ensureStatementEnd(); err != nil {
			return nil, err
		}
		return c.expansionTriples, nil
	}
	triples, err := c.parsePredicateObjectList(subject)
	if err != nil {
		return nil, err
	}
	return append(triples, c.expansionTriples...), nil
}

func (c *turtleCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *turtleCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *turtleCursor) ensureStatementEnd() error {
	c.skipWS()
	if c.pos < len(c.input) {
		return c.errorf("unexpected content after '.'")
	}
	return nil
}

func (c *turtleCursor) parseSubject() (Term, error) {
	c.skipWS()
	term, err := c.parseTerm(false)
	if err != nil {
		return nil, err
	}
	if _, ok := term.(Literal); ok {
		return nil, c.errorf("literal cannot be used as subject")
	}
	return term, nil
}

func (c *turtleCursor) parsePredicate() (IRI, error) {
	c.skipWS()
	// "a_:x" is the shorthand followed by a blank node, while "a_b:x"
	// starts a prefixed name; a lone '_' cannot act as a delimiter.
	if strings.HasPrefix(c.input[c.pos:], "a") &&
		(isTermDelimiter(c.peekNext()) || strings.HasPrefix(c.input[c.pos+1:], "_:")) {
		c.pos++
		return RDFType, nil
	}
	term, err := c.parseTerm(false)
	if err != nil {
		return IRI{}, err
	}
	if iri, ok := term.(IRI); ok {
		return iri, nil
	}
	return IRI{}, c.errorf("predicate must be IRI")
}

func (c *turtleCursor) parseObject() (Term, error) {
	return c.parseTerm(true)
}

func (c *turtleCursor) parseObjectList(subject Term, predicate IRI) ([]Triple, bool, error) {
	var triples []Triple
	for {
		object, err := c.parseObject()
		if err != nil {
			return nil, false, err
		}
		triples = append(triples, Triple{S: subject, P: predicate, O: object})

		c.skipWS()
		if c.pos < len(c.input) && c.input[c.pos] == ',' {
			c.pos++
			c.skipWS()
			continue
		}
		if c.pos < len(c.input) && c.input[c.pos] == '.' {
			c.pos++
			if err := c.ensureStatementEnd(); err != nil {
				return nil, false, err
			}
			return triples, true, nil
		}
		break
	}
	return triples, false, nil
}

func (c *turtleCursor) parsePredicateObjectList(subject Term) ([]Triple, error) {
	var triples []Triple
	for {
		predicate, err := c.parsePredicate()
		if err != nil {
			return nil, err
		}
		objectTriples, ended, err := c.parseObjectList(subject, predicate)
		if err != nil {
			return nil, err
		}
		triples = append(triples, objectTriples...)
		if ended {
			return triples, nil
		}

		c.skipWS()
		// Repeated semicolons are tolerated.
		hadSemicolon := false
		for c.pos < len(c.input) && c.input[c.pos] == ';' {
			hadSemicolon = true
			c.pos++
			c.skipWS()
		}
		if hadSemicolon {
			if c.pos < len(c.input) && c.input[c.pos] == '.' {
				c.pos++
				if err := c.ensureStatementEnd(); err != nil {
					return nil, err
				}
				break
			}
			continue
		}
		if c.pos < len(c.input) && c.input[c.pos] == '.' {
			c.pos++
			if err := c.ensureStatementEnd(); err != nil {
				return nil, err
			}
			break
		}
		end := c.pos + 40
		if end > len(c.input) {
			end = len(c.input)
		}
		return nil, c.errorf("expected ',' or ';' or '.' near %q", c.input[c.pos:end])
	}
	return triples, nil
}

func (c *turtleCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	c.lastTermBlankNodeList = false
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of statement")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return c.parseTripleTerm()
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '[':
		return c.parseBlankNodePropertyList()
	case c.input[c.pos] == '(':
		return c.parseCollection()
	case strings.HasPrefix(c.input[c.pos:], `"""`), strings.HasPrefix(c.input[c.pos:], "'''"):
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLongLiteral(c.input[c.pos])
	case c.input[c.pos] == '"', c.input[c.pos] == '\'':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral(c.input[c.pos])
	}
	if allowLiteral {
		if num, ok := c.tryParseNumericLiteral(); ok {
			return num, nil
		}
		if boolVal, ok := c.tryParseBooleanLiteral(); ok {
			return boolVal, nil
		}
	}
	return c.parsePrefixedName()
}

func (c *turtleCursor) parseIRI() (Term, error) {
	if !c.consume('<') {
		return nil, c.errorf("expected IRI")
	}
	start := c.pos
	var unescaped strings.Builder
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		ch := c.input[c.pos]
		if ch == '\\' {
			// Only UCHAR escapes are allowed inside an IRIREF.
			if c.pos+1 >= len(c.input) || (c.input[c.pos+1] != 'u' && c.input[c.pos+1] != 'U') {
				return nil, c.errorf("invalid escape in IRI")
			}
			width := 6
			if c.input[c.pos+1] == 'U' {
				width = 10
			}
			if c.pos+width > len(c.input) {
				return nil, c.errorf("unterminated IRI")
			}
			codePoint := decodeUChar(c.input[c.pos+2 : c.pos+width])
			if codePoint < 0 || !isValidUnicodeCodePoint(codePoint) || isDisallowedIRIChar(codePoint) {
				return nil, c.errorf("invalid character in IRI")
			}
			unescaped.WriteString(c.input[start:c.pos])
			unescaped.WriteRune(codePoint)
			c.pos += width
			start = c.pos
			continue
		}
		if ch <= 0x20 || ch == '<' || ch == '"' || ch == '{' || ch == '}' || ch == '|' || ch == '^' || ch == '`' {
			return nil, c.errorf("invalid character in IRI")
		}
		c.pos++
	}
	if c.pos >= len(c.input) {
		return nil, c.errorf("unterminated IRI")
	}
	unescaped.WriteString(c.input[start:c.pos])
	c.pos++
	value := unescaped.String()
	if c.base != "" {
		return IRI{Value: resolveIRI(c.base, value)}, nil
	}
	return IRI{Value: value}, nil
}

func isDisallowedIRIChar(codePoint rune) bool {
	if codePoint <= 0x20 || (codePoint >= 0x7F && codePoint <= 0x9F) {
		return true
	}
	switch codePoint {
	case '<', '>', '"', '{', '}', '|', '^', '`', '\\':
		return true
	}
	return false
}

func (c *turtleCursor) tryParseNumericLiteral() (Literal, bool) {
	start := c.pos
	if c.pos < len(c.input) && (c.input[c.pos] == '+' || c.input[c.pos] == '-') {
		c.pos++
	}
	if c.pos >= len(c.input) {
		c.pos = start
		return Literal{}, false
	}

	hasDot := false
	hasExponent := false
	hasDigits := false

	// Numbers may start with '.' as in .5 or -.7
	if c.input[c.pos] == '.' {
		if c.pos+1 < len(c.input) && c.input[c.pos+1] >= '0' && c.input[c.pos+1] <= '9' {
			hasDot = true
			c.pos++
		} else {
			c.pos = start
			return Literal{}, false
		}
	}

	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch >= '0' && ch <= '9' {
			hasDigits = true
			c.pos++
		} else if ch == '.' && !hasDot && !hasExponent {
			next := byte(0)
			if c.pos+1 < len(c.input) {
				next = c.input[c.pos+1]
			}
			// '.' is a decimal point only if followed by a digit or
			// exponent, otherwise it terminates the statement.
			if (next >= '0' && next <= '9') || next == 'e' || next == 'E' {
				hasDot = true
				c.pos++
			} else {
				break
			}
		} else if (ch == 'e' || ch == 'E') && !hasExponent && hasDigits {
			hasExponent = true
			c.pos++
			if c.pos < len(c.input) && (c.input[c.pos] == '+' || c.input[c.pos] == '-') {
				c.pos++
			}
			if c.pos >= len(c.input) || c.input[c.pos] < '0' || c.input[c.pos] > '9' {
				c.pos = start
				return Literal{}, false
			}
		} else {
			break
		}
	}

	if !hasDigits {
		c.pos = start
		return Literal{}, false
	}

	lexical := c.input[start:c.pos]
	if c.pos < len(c.input) {
		next := c.input[c.pos]
		nextNext := byte(0)
		if c.pos+1 < len(c.input) {
			nextNext = c.input[c.pos+1]
		}
		if !isTurtleTerminator(next, nextNext) {
			c.pos = start
			return Literal{}, false
		}
	}
	var datatype IRI
	switch {
	case hasExponent:
		datatype = XSDDouble
	case hasDot:
		datatype = XSDDecimal
	default:
		datatype = XSDInteger
	}
	return Literal{Lexical: lexical, Datatype: datatype}, true
}

func (c *turtleCursor) tryParseBooleanLiteral() (Literal, bool) {
	if strings.HasPrefix(c.input[c.pos:], "true") && (c.pos+4 >= len(c.input) || isTermDelimiter(c.input[c.pos+4])) {
		c.pos += 4
		return Literal{Lexical: "true", Datatype: XSDBoolean}, true
	}
	if strings.HasPrefix(c.input[c.pos:], "false") && (c.pos+5 >= len(c.input) || isTermDelimiter(c.input[c.pos+5])) {
		c.pos += 5
		return Literal{Lexical: "false", Datatype: XSDBoolean}, true
	}
	return Literal{}, false
}

func (c *turtleCursor) parsePrefixedName() (Term, error) {
	start := c.pos
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		next := byte(0)
		if c.pos+1 < len(c.input) {
			next = c.input[c.pos+1]
		}
		if c.pos > start && c.input[c.pos-1] == '\\' {
			c.pos++
			continue
		}
		if isTurtleTerminator(ch, next) {
			break
		}
		c.pos++
	}
	token := c.input[start:c.pos]
	if token == "" {
		return nil, c.errorf("expected term")
	}
	prefix, local, ok := strings.Cut(token, ":")
	if !ok {
		return nil, c.errorf("invalid token %q", token)
	}
	ns, known := c.prefixes[prefix]
	if !known {
		return nil, c.errorf("unknown prefix %q", prefix)
	}
	if local == "" {
		return IRI{Value: ns}, nil
	}
	if local[0] == '.' || local[0] == '-' {
		return nil, c.errorf("invalid token %q", token)
	}
	if strings.HasSuffix(local, ".") {
		if len(local) < 2 || local[len(local)-2] != '\\' {
			return nil, c.errorf("invalid token %q", token)
		}
	}
	unescaped, err := unescapeLocalName(local)
	if err != nil {
		return nil, c.errorf("invalid token %q", token)
	}
	return IRI{Value: ns + unescaped}, nil
}

// unescapeLocalName validates PN_LOCAL escapes and percent sequences and
// strips the escape backslashes.
func unescapeLocalName(local string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(local); i++ {
		ch := local[i]
		switch ch {
		case '~', '^':
			return "", fmt.Errorf("invalid character %q", ch)
		case '\\':
			if i+1 >= len(local) || !isValidPNLocalEscape(local[i+1]) {
				return "", fmt.Errorf("invalid escape")
			}
			b.WriteByte(local[i+1])
			i++
		case '%':
			if i+2 >= len(local) || !isHexDigit(local[i+1]) || !isHexDigit(local[i+2]) {
				return "", fmt.Errorf("invalid percent sequence")
			}
			b.WriteString(local[i : i+3])
			i += 2
		default:
			b.WriteByte(ch)
		}
	}
	return b.String(), nil
}

func (c *turtleCursor) parseBlankNode() (Term, error) {
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return nil, c.errorf("expected blank node")
	}
	c.pos += 2
	start := c.pos
	if c.pos < len(c.input) && c.input[c.pos] == ':' {
		return nil, c.errorf("invalid blank node syntax")
	}
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		next := byte(0)
		if c.pos+1 < len(c.input) {
			next = c.input[c.pos+1]
		}
		if ch == ':' || isTurtleTerminator(ch, next) {
			break
		}
		c.pos++
	}
	if start == c.pos {
		return nil, c.errorf("blank node id missing")
	}
	if c.input[c.pos-1] == '.' {
		return nil, c.errorf("invalid blank node syntax")
	}
	id := c.input[start:c.pos]
	if strings.HasPrefix(id, genBlankPrefix) {
		return nil, ErrReservedBlankNodeLabel
	}
	return BlankNode{ID: id}, nil
}

func (c *turtleCursor) parseLiteral(quoteChar byte) (Term, error) {
	if !c.consume(quoteChar) {
		return nil, c.errorf("expected literal")
	}
	var builder strings.Builder
	closed := false
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == quoteChar {
			c.pos++
			closed = true
			break
		}
		if ch == '\\' {
			if err := c.readEscape(&builder); err != nil {
				return nil, err
			}
			continue
		}
		if ch == '\n' || ch == '\r' {
			return nil, c.errorf("unescaped newline in literal")
		}
		builder.WriteByte(ch)
		c.pos++
	}
	if !closed {
		return nil, c.errorf("unterminated literal")
	}
	return c.parseLiteralSuffix(builder.String())
}

// parseLongLiteral parses a triple quoted literal. Inside it only the
// closing quote run needs escaping; bare newlines and single quotes of
// the delimiter kind pass through.
func (c *turtleCursor) parseLongLiteral(quoteChar byte) (Term, error) {
	c.pos += 3
	var builder strings.Builder
	closed := false
	for c.pos < len(c.input) {
		if c.pos+2 < len(c.input) &&
			c.input[c.pos] == quoteChar &&
			c.input[c.pos+1] == quoteChar &&
			c.input[c.pos+2] == quoteChar {
			c.pos += 3
			closed = true
			break
		}
		ch := c.input[c.pos]
		if ch == '\\' {
			if c.pos+1 < len(c.input) && c.input[c.pos+1] == quoteChar {
				builder.WriteByte(quoteChar)
				c.pos += 2
				continue
			}
			if err := c.readEscape(&builder); err != nil {
				return nil, err
			}
			continue
		}
		builder.WriteByte(ch)
		c.pos++
	}
	if !closed {
		return nil, c.errorf("unterminated long string literal")
	}
	return c.parseLiteralSuffix(builder.String())
}

// parseLiteralSuffix handles the optional language tag or datatype
// following a string literal body.
func (c *turtleCursor) parseLiteralSuffix(lexical string) (Term, error) {
	c.skipWS()
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) {
			ch := c.input[c.pos]
			next := byte(0)
			if c.pos+1 < len(c.input) {
				next = c.input[c.pos+1]
			}
			if isTurtleTerminator(ch, next) {
				break
			}
			c.pos++
		}
		lang := c.input[start:c.pos]
		if !isValidLangTag(lang) {
			return nil, c.errorf("invalid language tag %q", lang)
		}
		if strings.HasPrefix(c.input[c.pos:], "^^") {
			return nil, c.errorf("literal cannot have both language tag and datatype")
		}
		return Literal{Lexical: lexical, Lang: lang}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseTerm(false)
		if err != nil {
			return nil, err
		}
		iri, ok := dt.(IRI)
		if !ok {
			return nil, c.errorf("datatype must be IRI")
		}
		return Literal{Lexical: lexical, Datatype: iri}, nil
	}
	return Literal{Lexical: lexical}, nil
}

// readEscape decodes one backslash escape at the cursor into builder.
func (c *turtleCursor) readEscape(builder *strings.Builder) error {
	if c.pos+1 >= len(c.input) {
		return c.errorf("unterminated escape")
	}
	next := c.input[c.pos+1]
	switch next {
	case 'n':
		builder.WriteByte('\n')
	case 't':
		builder.WriteByte('\t')
	case 'r':
		builder.WriteByte('\r')
	case 'b':
		builder.WriteByte('\b')
	case 'f':
		builder.WriteByte('\f')
	case '"':
		builder.WriteByte('"')
	case '\'':
		builder.WriteByte('\'')
	case '\\':
		builder.WriteByte('\\')
	case 'u':
		if c.pos+6 > len(c.input) {
			return c.errorf("invalid escape sequence")
		}
		codePoint := decodeUChar(c.input[c.pos+2 : c.pos+6])
		if codePoint < 0 {
			return c.errorf("invalid escape sequence")
		}
		if codePoint >= 0xD800 && codePoint <= 0xDBFF {
			// High surrogate, must pair with a following \uDCxx.
			if c.pos+12 > len(c.input) || c.input[c.pos+6] != '\\' || c.input[c.pos+7] != 'u' {
				return c.errorf("invalid escape sequence")
			}
			low := decodeUChar(c.input[c.pos+8 : c.pos+12])
			if low < 0xDC00 || low > 0xDFFF {
				return c.errorf("invalid escape sequence")
			}
			builder.WriteRune(0x10000 + ((codePoint - 0xD800) << 10) + (low - 0xDC00))
			c.pos += 12
			return nil
		}
		if !isValidUnicodeCodePoint(codePoint) {
			return c.errorf("invalid escape sequence")
		}
		builder.WriteRune(codePoint)
		c.pos += 6
		return nil
	case 'U':
		if c.pos+10 > len(c.input) {
			return c.errorf("invalid escape sequence")
		}
		codePoint := decodeUChar(c.input[c.pos+2 : c.pos+10])
		if codePoint < 0 || !isValidUnicodeCodePoint(codePoint) {
			return c.errorf("invalid escape sequence")
		}
		builder.WriteRune(codePoint)
		c.pos += 10
		return nil
	default:
		return c.errorf("invalid escape sequence")
	}
	c.pos += 2
	return nil
}

// parseTripleTerm parses a quoted triple << s p o >>.
func (c *turtleCursor) parseTripleTerm() (Term, error) {
	if !strings.HasPrefix(c.input[c.pos:], "<<") {
		return nil, c.errorf("expected '<<'")
	}
	c.pos += 2
	c.skipWS()

	subject, err := c.parseQuotedTerm(false)
	if err != nil {
		return nil, err
	}
	predicate, err := c.parsePredicate()
	if err != nil {
		return nil, err
	}
	object, err := c.parseQuotedTerm(true)
	if err != nil {
		return nil, err
	}
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], ">>") {
		return nil, c.errorf("expected '>>'")
	}
	c.pos += 2
	return TripleTerm{S: subject, P: predicate, O: object}, nil
}

// parseQuotedTerm parses a term inside a quoted triple. Collections and
// property lists are not allowed there.
func (c *turtleCursor) parseQuotedTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of statement")
	}
	switch {
	case strings.HasPrefix(c.input[c.pos:], "<<"):
		return c.parseTripleTerm()
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"', c.input[c.pos] == '\'':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral(c.input[c.pos])
	default:
		if allowLiteral {
			if num, ok := c.tryParseNumericLiteral(); ok {
				return num, nil
			}
			if boolVal, ok := c.tryParseBooleanLiteral(); ok {
				return boolVal, nil
			}
		}
		return c.parsePrefixedName()
	}
}

// parseCollection parses ( object* ), expanding to rdf:first/rdf:rest
// triples with a fresh head blank node. The empty collection is rdf:nil.
func (c *turtleCursor) parseCollection() (Term, error) {
	if !c.consume('(') {
		return nil, c.errorf("expected '('")
	}
	var objects []Term
	for {
		c.skipWS()
		if c.pos >= len(c.input) {
			return nil, c.errorf("unterminated collection")
		}
		if c.input[c.pos] == ')' {
			c.pos++
			break
		}
		obj, err := c.parseTerm(true)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	if len(objects) == 0 {
		return RDFNil, nil
	}

	head := c.nextBlank()
	current := head
	for i, obj := range objects {
		c.expansionTriples = append(c.expansionTriples, Triple{S: current, P: RDFFirst, O: obj})
		var rest Term = RDFNil
		if i < len(objects)-1 {
			rest = c.nextBlank()
		}
		c.expansionTriples = append(c.expansionTriples, Triple{S: current, P: RDFRest, O: rest})
		if bn, ok := rest.(BlankNode); ok {
			current = bn
		}
	}
	return head, nil
}

// parseBlankNodePropertyList parses [ predicateObjectList ], emitting
// the inner triples with a fresh blank node subject.
func (c *turtleCursor) parseBlankNodePropertyList() (Term, error) {
	if !c.consume('[') {
		return nil, c.errorf("expected '['")
	}
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ']' {
		c.pos++
		c.lastTermBlankNodeList = true
		return c.nextBlank(), nil
	}

	bn := c.nextBlank()
	for {
		predicate, err := c.parsePredicate()
		if err != nil {
			return nil, err
		}
		for {
			object, err := c.parseObject()
			if err != nil {
				return nil, err
			}
			c.expansionTriples = append(c.expansionTriples, Triple{S: bn, P: predicate, O: object})

			c.skipWS()
			if c.pos < len(c.input) && c.input[c.pos] == ']' {
				c.pos++
				c.skipWS()
				c.lastTermBlankNodeList = true
				return bn, nil
			}
			if c.pos < len(c.input) && c.input[c.pos] == ',' {
				c.pos++
				c.skipWS()
				continue
			}
			break
		}

		c.skipWS()
		if c.pos < len(c.input) && c.input[c.pos] == ']' {
			c.pos++
			c.skipWS()
			break
		}
		hadSemicolon := false
		for c.pos < len(c.input) && c.input[c.pos] == ';' {
			hadSemicolon = true
			c.pos++
			c.skipWS()
		}
		if hadSemicolon {
			continue
		}
		return nil, c.errorf("expected ',' or ';' or ']'")
	}
	c.lastTermBlankNodeList = true
	return bn, nil
}

func isTurtleTerminator(ch byte, next byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', ';', ',', '(', ')', '[', ']', '}', '>', '"', '\'', '<':
		return true
	case '.':
		// Dot terminates only when followed by whitespace or a
		// delimiter, otherwise it may be part of a local name.
		switch next {
		case 0, ' ', '\t', '\r', '\n', ';', ',', ')', ']', '}':
			return true
		default:
			return false
		}
	default:
		return false
	}
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case 0, ' ', '\t', '\r', '\n', '.', ';', ',', '<', '[', '(', ')', ']', '"', '\'':
		return true
	default:
		return false
	}
}

func (c *turtleCursor) peekNext() byte {
	if c.pos+1 >= len(c.input) {
		return 0
	}
	return c.input[c.pos+1]
}

func (c *turtleCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("turtle: "+format, args...)
}

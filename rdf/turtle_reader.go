package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// turtleReader accumulates physical lines into complete statements,
// handles directives and feeds statements to the cursor parser.
type turtleReader struct {
	reader       *bufio.Reader
	input        *Input
	line         int
	blankCounter int
	seenSubjects map[string]struct{}
	seenBlankObj map[string]struct{}
}

// ParseTurtle reads a full Turtle document and returns the parsed
// input bundle. When the document declares no base, SubstituteBase is
// installed so relative IRIs survive the round trip.
func ParseTurtle(r io.Reader) (*Input, error) {
	tr := &turtleReader{
		reader:       bufio.NewReader(r),
		input:        NewInput(),
		seenSubjects: make(map[string]struct{}),
		seenBlankObj: make(map[string]struct{}),
	}
	if err := tr.run(); err != nil {
		return nil, err
	}
	return tr.input, nil
}

// ParseTurtleString parses a Turtle document held in a string.
func ParseTurtleString(s string) (*Input, error) {
	return ParseTurtle(strings.NewReader(s))
}

func (r *turtleReader) run() error {
	var statement strings.Builder
	startLine := 0
	for {
		line, err := r.readLine()
		if err != nil && err != io.EOF {
			return err
		}
		atEOF := err == io.EOF
		r.line++

		if inside, quote := endsInsideLongString(statement.String()); inside {
			// Inside a triple quoted string every byte up to the
			// closing delimiter is literal text, newline included.
			body, rest, closed := splitLongStringClose(strings.TrimRight(line, "\r\n"), quote)
			statement.WriteByte('\n')
			statement.WriteString(body)
			if !closed {
				if atEOF {
					return wrapParseError(statement.String(), startLine,
						fmt.Errorf("turtle: unterminated long string literal"))
				}
				continue
			}
			strippedRest := stripComment(rest)
			if len(strippedRest) != len(rest) {
				r.input.ContainsComments = true
			}
			statement.WriteString(strippedRest)
			if stmt := strings.TrimSpace(statement.String()); isStatementComplete(stmt) {
				if err := r.parseStatement(stmt, startLine); err != nil {
					return err
				}
				statement.Reset()
			}
			if atEOF {
				if remaining := strings.TrimSpace(statement.String()); remaining != "" {
					return wrapParseError(remaining, startLine, fmt.Errorf("turtle: unterminated statement"))
				}
				break
			}
			continue
		}

		stripped := stripComment(line)
		if len(stripped) != len(line) {
			r.input.ContainsComments = true
		}
		part := strings.TrimSpace(stripped)
		if inside, _ := endsInsideLongString(stripped); inside {
			// The line opens a triple quoted string; trailing spaces
			// are part of the string body.
			part = strings.TrimLeft(strings.TrimRight(stripped, "\r\n"), " \t")
		}
		if part != "" {
			if statement.Len() == 0 {
				startLine = r.line
				handled, derr := r.handleDirective(part)
				if derr != nil {
					return wrapParseError(part, r.line, derr)
				}
				if handled {
					if atEOF {
						break
					}
					continue
				}
			}
			if statement.Len() > 0 {
				statement.WriteByte(' ')
			}
			statement.WriteString(part)
		}

		stmt := strings.TrimSpace(statement.String())
		if stmt != "" && (isStatementComplete(stmt) || atEOF) {
			if err := r.parseStatement(stmt, startLine); err != nil {
				return err
			}
			statement.Reset()
		}
		if atEOF {
			if rest := strings.TrimSpace(statement.String()); rest != "" {
				return wrapParseError(rest, startLine, fmt.Errorf("turtle: unterminated statement"))
			}
			break
		}
	}
	return nil
}

func (r *turtleReader) readLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		return line, nil
	}
	return line, err
}

func (r *turtleReader) nextBlank() BlankNode {
	r.blankCounter++
	return BlankNode{ID: fmt.Sprintf("%s%d", genBlankPrefix, r.blankCounter)}
}

// handleDirective recognizes @prefix/@base and their SPARQL spellings.
// Redeclaring a prefix with a different namespace or declaring a second
// base is rejected, so directives cannot silently change meaning midway
// through a document.
func (r *turtleReader) handleDirective(line string) (bool, error) {
	prefix, iri, ok := parseAtPrefixDirective(line, true)
	if !ok {
		prefix, iri, ok = parseBarePrefixDirective(line)
	}
	if ok {
		return true, r.declarePrefix(prefix, iri)
	}
	iri, ok = parseAtBaseDirective(line)
	if !ok {
		iri, ok = parseBaseDirective(line)
	}
	if ok {
		return true, r.declareBase(iri)
	}
	return false, nil
}

func (r *turtleReader) declarePrefix(prefix, iri string) error {
	iri = resolveIRI(r.input.Base, iri)
	if existing, ok := r.input.Prefixes[prefix]; ok && existing != iri {
		return fmt.Errorf("%w: %q bound to <%s> and <%s>", ErrPrefixRedefined, prefix, existing, iri)
	}
	r.input.Prefixes[prefix] = iri
	if _, ok := r.input.InversePrefixes[iri]; !ok {
		r.input.InversePrefixes[iri] = prefix
	}
	return nil
}

func (r *turtleReader) declareBase(iri string) error {
	if r.input.BaseDeclared {
		return fmt.Errorf("%w: second base <%s>", ErrMultipleBases, iri)
	}
	r.input.Base = resolveIRI(SubstituteBase, iri)
	r.input.BaseDeclared = true
	return nil
}

func (r *turtleReader) parseStatement(stmt string, line int) error {
	cursor := &turtleCursor{
		input:     stmt,
		prefixes:  r.input.Prefixes,
		base:      r.input.Base,
		nextBlank: r.nextBlank,
	}
	triples, err := cursor.parseStatement()
	if err != nil {
		return wrapParseError(stmt, line, err)
	}
	for _, t := range triples {
		r.input.Graph.Insert(t)
		r.recordOrder(t)
	}
	return nil
}

// recordOrder tracks first appearances: every subject, and every blank
// node seen in object position. Both orders feed sorting tie-breaks.
func (r *turtleReader) recordOrder(t Triple) {
	sk := termKey(t.S)
	if _, ok := r.seenSubjects[sk]; !ok {
		r.seenSubjects[sk] = struct{}{}
		r.input.SubjectOrder = append(r.input.SubjectOrder, t.S)
	}
	if bn, ok := t.O.(BlankNode); ok {
		if _, seen := r.seenBlankObj[bn.ID]; !seen {
			r.seenBlankObj[bn.ID] = struct{}{}
			r.input.BlankObjectOrder = append(r.input.BlankObjectOrder, bn.ID)
		}
	}
}

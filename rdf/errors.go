package rdf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPrefixRedefined indicates a prefix label was bound a second
	// time with a different namespace.
	ErrPrefixRedefined = errors.New("rdf: prefix redefined with a different namespace")
	// ErrMultipleBases indicates more than one base IRI declaration.
	ErrMultipleBases = errors.New("rdf: multiple base IRI declarations")
	// ErrReservedBlankNodeLabel indicates a blank node label that
	// collides with the generated label namespace.
	ErrReservedBlankNodeLabel = errors.New("rdf: blank node label collides with generated labels")
)

// ParseError provides structured context for Turtle parse failures.
type ParseError struct {
	Statement string // Offending statement or input excerpt
	Line      int    // 1-based line number (0 if unknown)
	Err       error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString("turtle")
	if e.Line > 0 {
		fmt.Fprintf(&msg, ":%d", e.Line)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	if e.Statement != "" {
		msg.WriteString("\n  ")
		msg.WriteString(excerpt(e.Statement))
	}
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func excerpt(statement string) string {
	const maxExcerptLen = 80
	if len(statement) > maxExcerptLen {
		return statement[:maxExcerptLen] + "..."
	}
	return statement
}

// wrapParseError adds statement and line context to a parse error. An
// error that is already a ParseError is returned unchanged so the most
// precise position wins.
func wrapParseError(statement string, line int, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &ParseError{Statement: statement, Line: line, Err: err}
}

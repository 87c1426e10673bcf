package format

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/elevont/prttl/rdf"
)

// turtleDoubleRE is the DOUBLE production of the Turtle grammar, which
// is narrower than the xsd:double lexical space. Values outside it are
// written as data-typed literals instead.
var turtleDoubleRE = regexp.MustCompile(`^[+-]?(([0-9]+(\.[0-9]*)?)|(\.[0-9]+))[eE][+-]?[0-9]+$`)

type encoder struct {
	out    strings.Builder
	input  *rdf.Input
	opts   *Options
	indent int

	// unreferenced blank nodes must have been rendered anonymously by
	// the builder; one reaching the encoder labeled is a bug.
	unreferenced map[string]struct{}
}

func encodeTree(tree *Tree, input *rdf.Input, cls *classification, opts *Options) string {
	e := &encoder{input: input, opts: opts, unreferenced: cls.unreferenced}
	e.encodeDirectives()
	for _, entry := range tree.Entries {
		e.encodeSubjectEntry(entry)
	}
	return e.out.String()
}

func (e *encoder) write(s string) { e.out.WriteString(s) }
func (e *encoder) writef(f string, a ...any) { fmt.Fprintf(&e.out, f, a...) }

func (e *encoder) writeIndent() {
	for i := 0; i < e.indent; i++ {
		e.write(e.opts.Indentation)
	}
}

// encodeDirectives writes the base declaration, the prefix
// declarations in prefix order and one separating blank line.
func (e *encoder) encodeDirectives() {
	if base := e.input.Base; e.input.BaseDeclared && base != rdf.SubstituteBase {
		if e.opts.SPARQLSyntax {
			e.writef("BASE <%s>\n", base)
		} else {
			e.writef("@base <%s> .\n", base)
		}
	}
	prefixes := make([]string, 0, len(e.input.Prefixes))
	for p := range e.input.Prefixes {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	for _, p := range prefixes {
		if e.opts.SPARQLSyntax {
			e.writef("PREFIX %s: <%s>\n", p, e.input.Prefixes[p])
		} else {
			e.writef("@prefix %s: <%s> .\n", p, e.input.Prefixes[p])
		}
	}
	e.write("\n")
}

func (e *encoder) encodeSubjectEntry(entry *SubjectEntry) {
	e.encodeNode(entry.Subject)
	_, anon := entry.Subject.(*BlankInlineNode)
	_, coll := entry.Subject.(*CollectionNode)
	if !anon {
		e.encodePredicates(entry.Predicates, true)
	}
	if anon || coll {
		if anon || len(entry.Predicates) == 0 {
			e.write(" .")
		}
		e.write("\n")
	}
	e.write("\n")
}

// encodePredicates writes a predicate-object block. With a single
// single-leafed predicate the whole block collapses onto the subject
// line; otherwise each predicate starts a new indented line, ends in
// " ;" and the block closes with a "." line when finalDot is set, or
// leaves the cursor indented for a closing bracket when it is not.
func (e *encoder) encodePredicates(preds []*PredicateEntry, finalDot bool) {
	if len(preds) == 0 {
		return
	}
	if !e.opts.SingleLeafedNewLines && len(preds) == 1 && preds[0].isSingleLeafed() {
		p := preds[0]
		e.write(" ")
		bak := e.indent
		e.indent = 0
		e.encodePredicate(p.Predicate)
		e.write(" ")
		e.encodeNode(p.Objects[0])
		if finalDot {
			e.write(" .")
		} else {
			e.write(" ")
		}
		e.indent = bak
		return
	}
	e.write("\n")
	e.indent++
	for _, p := range preds {
		e.encodePredicate(p.Predicate)
		if !e.opts.SingleLeafedNewLines && p.isSingleLeafed() {
			e.write(" ")
			bak := e.indent
			e.indent = 0
			e.encodeNode(p.Objects[0])
			e.indent = bak
		} else {
			e.indent++
			for i, o := range p.Objects {
				if i == 0 {
					e.write("\n")
				} else {
					e.write(" ,\n")
				}
				e.encodeNode(o)
			}
			e.indent--
		}
		e.write(" ;\n")
	}
	if finalDot {
		e.writeIndent()
		e.write(".\n")
	}
	e.indent--
	if !finalDot {
		e.writeIndent()
	}
}

func (e *encoder) encodeNode(n Node) {
	switch n := n.(type) {
	case *NamedNode:
		e.encodeNamed(n)
	case *BlankLabelNode:
		if _, ok := e.unreferenced[n.Label]; ok {
			panic(fmt.Sprintf("unreferenced blank node _:%s escaped anonymization", n.Label))
		}
		e.writeIndent()
		e.writef("_:%s", n.Label)
	case *BlankInlineNode:
		e.writeIndent()
		e.write("[")
		e.encodePredicates(n.Predicates, false)
		e.write("]")
	case *CollectionNode:
		e.encodeCollection(n)
	case *LiteralNode:
		e.encodeLiteral(n)
	case *QuotedTripleNode:
		e.encodeQuoted(n)
	}
}

// encodePredicate renders a predicate position named node, where
// rdf:type collapses to "a".
func (e *encoder) encodePredicate(n *NamedNode) {
	if n.IRI == rdf.RDFType {
		e.writeIndent()
		e.write("a")
		return
	}
	e.encodeNamed(n)
}

func (e *encoder) encodeNamed(n *NamedNode) {
	e.writeIndent()
	switch n.Form {
	case NamePrefixed:
		e.writef("%s:%s", n.Prefix, n.Local)
	case NameBased:
		e.writef("<%s>", n.Local)
	default:
		e.writef("<%s>", n.IRI.Value)
	}
}

func (e *encoder) encodeCollection(n *CollectionNode) {
	e.writeIndent()
	e.write("(")
	if len(n.Elements) > 0 {
		if !e.opts.SingleLeafedNewLines && n.isSingleLeafed() {
			e.write(" ")
			bak := e.indent
			e.indent = 0
			e.encodeNode(n.Elements[0])
			e.indent = bak
			e.write(" ")
		} else {
			e.write("\n")
			e.indent++
			for i, el := range n.Elements {
				if i > 0 {
					e.write("\n")
				}
				e.encodeNode(el)
			}
			e.write("\n")
			e.indent--
			e.writeIndent()
		}
	}
	e.write(")")
}

func (e *encoder) encodeQuoted(n *QuotedTripleNode) {
	e.writeIndent()
	e.write("<< ")
	bak := e.indent
	e.indent = 0
	e.encodeNode(n.Subject)
	e.write(" ")
	e.encodePredicate(n.Predicate)
	e.write(" ")
	e.encodeNode(n.Object)
	e.indent = bak
	e.write(" >>")
}

func (e *encoder) encodeLiteral(n *LiteralNode) {
	e.writeIndent()
	lit := n.Literal
	switch {
	case lit.Lang != "":
		e.encodeString(lit.Lexical)
		e.writef("@%s", lit.Lang)
	case lit.Datatype.Value == "" || lit.Datatype == rdf.XSDString:
		e.encodeString(lit.Lexical)
	case lit.Datatype == rdf.XSDBoolean || lit.Datatype == rdf.XSDInteger:
		e.write(lit.Lexical)
	case lit.Datatype == rdf.XSDDouble:
		if turtleDoubleRE.MatchString(lit.Lexical) {
			e.write(lit.Lexical)
		} else {
			e.warnUnsupportedNumber("xsd:double")
			e.encodeTypedLiteral(n)
		}
	case lit.Datatype == rdf.XSDDecimal:
		if strings.HasSuffix(lit.Lexical, ".") || !strings.Contains(lit.Lexical, ".") {
			e.warnUnsupportedNumber("xsd:decimal")
			e.encodeTypedLiteral(n)
		} else {
			e.write(lit.Lexical)
		}
	default:
		e.encodeTypedLiteral(n)
	}
}

// Not all valid xsd:double and xsd:decimal values fit the Turtle
// number productions, see <https://github.com/w3c/rdf-turtle/issues/98>.
func (e *encoder) warnUnsupportedNumber(datatype string) {
	if e.opts.WarnUnsupportedNumbers {
		e.opts.logger().Warn(
			"value does not fit the Turtle number syntax, writing a data-typed literal",
			"datatype", datatype)
	}
}

func (e *encoder) encodeTypedLiteral(n *LiteralNode) {
	e.writef("\"%s\"^^", n.Literal.Lexical)
	bak := e.indent
	e.indent = 0
	e.encodeNamed(n.NiceDatatype)
	e.indent = bak
}

// encodeString picks the triple quoted form for multi-line values.
// Values containing "\n\r" cannot be represented triple quoted and
// fall back to the escaped single quoted form.
func (e *encoder) encodeString(value string) {
	if strings.Contains(value, "\n") && !strings.Contains(value, "\n\r") {
		printUnquotedStr(&e.out, value)
	} else {
		printQuotedStr(&e.out, value)
	}
}

func printQuotedStr(out *strings.Builder, s string) {
	out.WriteByte('"')
	for _, c := range s {
		switch {
		case c == '\b':
			out.WriteString(`\b`)
		case c == '\t':
			out.WriteString(`\t`)
		case c == '\n':
			out.WriteString(`\n`)
		case c == '\f':
			out.WriteString(`\f`)
		case c == '\r':
			out.WriteString(`\r`)
		case c == '"':
			out.WriteString(`\"`)
		case c == '\\':
			out.WriteString(`\\`)
		case c <= '\x1f' || c == '\x7f':
			fmt.Fprintf(out, `\u%04X`, c)
		default:
			out.WriteRune(c)
		}
	}
	out.WriteByte('"')
}

// printUnquotedStr writes a triple quoted string, escaping every third
// consecutive quote and a quote in final position so the closing
// delimiter stays unambiguous.
func printUnquotedStr(out *strings.Builder, s string) {
	out.WriteString(`"""`)
	quoteRun := 0
	var prev rune
	havePrev := false
	for _, c := range s {
		if havePrev {
			out.WriteRune(prev)
		}
		if c == '"' {
			quoteRun++
			if quoteRun == 3 {
				out.WriteByte('\\')
				quoteRun = 0
			}
		} else {
			quoteRun = 0
		}
		prev = c
		havePrev = true
	}
	if havePrev {
		if prev == '"' {
			out.WriteByte('\\')
		}
		out.WriteRune(prev)
	}
	out.WriteString(`"""`)
}

// escapeLocalName rewrites a local name so it fits the PN_LOCAL
// production, backslash-escaping the reserved characters that allow
// it. It reports failure for characters that cannot appear at all.
func escapeLocalName(value string) (string, bool) {
	if value == "" {
		return "", true
	}
	var out strings.Builder
	runes := []rune(value)
	first := runes[0]
	switch {
	case isPNCharsU(first) || first == ':' || (first >= '0' && first <= '9'):
		out.WriteRune(first)
	case isLocalNameEscapable(first):
		out.WriteByte('\\')
		out.WriteRune(first)
	default:
		return "", false
	}
	for i, c := range runes[1:] {
		last := i == len(runes)-2
		switch {
		case isPNChars(c) || c == ':' || (c == '.' && !last):
			out.WriteRune(c)
		case isLocalNameEscapable(c):
			out.WriteByte('\\')
			out.WriteRune(c)
		default:
			return "", false
		}
	}
	return out.String(), true
}

func isPNCharsBase(c rune) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		return true
	case c >= 0x00C0 && c <= 0x00D6, c >= 0x00D8 && c <= 0x00F6:
		return true
	case c >= 0x00F8 && c <= 0x02FF, c >= 0x0370 && c <= 0x037D:
		return true
	case c >= 0x037F && c <= 0x1FFF, c >= 0x200C && c <= 0x200D:
		return true
	case c >= 0x2070 && c <= 0x218F, c >= 0x2C00 && c <= 0x2FEF:
		return true
	case c >= 0x3001 && c <= 0xD7FF, c >= 0xF900 && c <= 0xFDCF:
		return true
	case c >= 0xFDF0 && c <= 0xFFFD, c >= 0x10000 && c <= 0xEFFFF:
		return true
	}
	return false
}

func isPNCharsU(c rune) bool { return isPNCharsBase(c) || c == '_' }

func isPNChars(c rune) bool {
	return isPNCharsU(c) ||
		c == '-' || (c >= '0' && c <= '9') || c == 0x00B7 ||
		(c >= 0x0300 && c <= 0x036F) || (c >= 0x203F && c <= 0x2040)
}

func isLocalNameEscapable(c rune) bool {
	switch c {
	case '_', '~', '.', '-', '!', '$', '&', '\'', '(', ')', '*', '+', ',',
		';', '=', '/', '?', '#', '@', '%':
		return true
	}
	return false
}

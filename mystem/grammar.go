package mystem

import "strings"

const (
	clauseSep      = "="
	tokenSep       = ","
	alternativeSep = "|"
)

// Tag is a parsed Mystem tag.
type Tag struct {
	Clauses []Clause
}

// Clause is one "="-separated part of a tag.
type Clause struct {
	// Raw is the clause text as it appeared in the tag.
	Raw string
	// Tokens holds the comma-split clause when it has no parenthesized group.
	Tokens []string
	// Alternatives holds the comma-split alternatives of a parenthesized
	// group, nil when the clause has none.
	Alternatives [][]string
}

// ParseTag splits a Mystem tag into clauses and tokens. It never fails:
// empty clauses and empty tokens are kept as empty strings.
func ParseTag(s string) Tag {
	parts := strings.Split(s, clauseSep)

	tag := Tag{Clauses: make([]Clause, 0, len(parts))}
	for _, part := range parts {
		tag.Clauses = append(tag.Clauses, parseClause(part))
	}

	return tag
}

// parseClause recognizes a group spanning the first "(" to the last ")".
func parseClause(s string) Clause {
	c := Clause{Raw: s}

	open := strings.Index(s, "(")
	closing := strings.LastIndex(s, ")")

	if open < 0 || closing < open {
		c.Tokens = strings.Split(s, tokenSep)
		return c
	}

	for _, alt := range strings.Split(s[open+1:closing], alternativeSep) {
		c.Alternatives = append(c.Alternatives, strings.Split(alt, tokenSep))
	}

	return c
}

// Grouped returns true if the clause has a parenthesized group.
func (c Clause) Grouped() bool {
	return c.Alternatives != nil
}

// Live returns the tokens that take part in conversion: the first
// alternative of a group, or the plain tokens.
func (c Clause) Live() []string {
	if c.Grouped() {
		return c.Alternatives[0]
	}

	return c.Tokens
}

// Tokens returns the live tokens of every clause in order.
func (t Tag) Tokens() []string {
	var out []string
	for _, c := range t.Clauses {
		out = append(out, c.Live()...)
	}

	return out
}

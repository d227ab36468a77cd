// Copyright © 2025 Liqiang Hou
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package gentree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A ParseError is an error found
// while parsing a Newick tree statement.
type ParseError struct {
	Pos int    // offset on the statement, in bytes
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("newick: at byte %d: %s", e.Pos, e.Msg)
}

// Split divides a blob of Newick text
// into independent tree statements,
// one per ';' found on the input,
// re-appending the terminator to each statement.
// Blank statements are discarded.
// A trailing statement without a terminator
// is closed with one,
// as several tools leave the last tree unterminated.
func Split(blob string) []string {
	var stmts []string
	start := 0
	for i := 0; i < len(blob); i++ {
		if blob[i] != ';' {
			continue
		}
		if s := strings.TrimSpace(blob[start:i]); s != "" {
			stmts = append(stmts, s+";")
		}
		start = i + 1
	}
	if s := strings.TrimSpace(blob[start:]); s != "" {
		stmts = append(stmts, s+";")
	}
	return stmts
}

// Parse reads a tree from a single Newick statement,
// i.e. a text of the form
//
//	((gene_1:0.1,gene_2:0.2)0.95:0.3,gene_3:0.5);
//
// with optional node names,
// support values,
// and branch lengths.
//
// A support value is recognized positionally:
// a bare numeric token after a closing parenthesis,
// before the branch length colon,
// either alone or following the node name.
func Parse(text string) (*Tree, error) {
	p := &parser{s: text}
	t := newTree()
	if err := p.subtree(t, t.addNode(-1)); err != nil {
		return nil, err
	}
	p.spaces()
	if r := p.next(); r != ';' {
		return nil, p.errf("expecting ';'")
	}
	p.spaces()
	if p.pos < len(p.s) {
		return nil, p.errf("unexpected text after tree")
	}
	return t, nil
}

// Read reads all the Newick tree statements
// found on r.
func Read(r io.Reader) ([]*Tree, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var trees []*Tree
	for i, s := range Split(string(blob)) {
		t, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %v", i+1, err)
		}
		trees = append(trees, t)
	}
	return trees, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) next() rune {
	if p.pos >= len(p.s) {
		return 0
	}
	r, w := utf8.DecodeRuneInString(p.s[p.pos:])
	p.pos += w
	return r
}

func (p *parser) peek() rune {
	pos := p.pos
	r := p.next()
	p.pos = pos
	return r
}

func (p *parser) spaces() {
	for p.pos < len(p.s) {
		r, w := utf8.DecodeRuneInString(p.s[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += w
	}
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// subtree parses a leaf or a parenthesized descendant list,
// with its trailing label,
// into the indicated node.
func (p *parser) subtree(t *Tree, id int) error {
	p.spaces()
	if p.peek() != '(' {
		return p.label(t, id, false)
	}
	p.next()
	for {
		if err := p.subtree(t, t.addNode(id)); err != nil {
			return err
		}
		p.spaces()
		switch r := p.next(); r {
		case ',':
			continue
		case ')':
		case 0:
			return p.errf("unbalanced parenthesis")
		default:
			return p.errf("expecting ',' or ')', found %q", r)
		}
		break
	}
	return p.label(t, id, true)
}

// label parses the name, support, and branch length
// of a node.
// On leaves a name is required
// and a support value is not accepted.
func (p *parser) label(t *Tree, id int, internal bool) error {
	p.spaces()
	tok, err := p.token()
	if err != nil {
		return err
	}
	n := t.nodes[id]
	if !internal {
		if tok == "" {
			return p.errf("expecting leaf name")
		}
		n.name = tok
	} else if tok != "" {
		if v, err := strconv.ParseFloat(tok, 64); err == nil {
			n.support = v
			n.hasSupport = true
		} else {
			n.name = tok
			p.spaces()
			if r := p.peek(); !isDelim(r) {
				st, err := p.token()
				if err != nil {
					return err
				}
				v, err := strconv.ParseFloat(st, 64)
				if err != nil {
					return p.errf("invalid support value %q", st)
				}
				n.support = v
				n.hasSupport = true
			}
		}
	}

	p.spaces()
	if p.peek() != ':' {
		return nil
	}
	p.next()
	p.spaces()
	tok, err = p.token()
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return p.errf("invalid branch length %q", tok)
	}
	if v < 0 {
		return p.errf("negative branch length %q", tok)
	}
	n.branch = v
	n.hasBranch = true
	return nil
}

// token reads a name or a numeric field.
// Names can be single quoted.
func (p *parser) token() (string, error) {
	if p.peek() == '\'' {
		p.next()
		start := p.pos
		for {
			r := p.next()
			if r == 0 {
				return "", p.errf("unterminated quoted name")
			}
			if r == '\'' {
				return p.s[start : p.pos-1], nil
			}
		}
	}
	start := p.pos
	for p.pos < len(p.s) {
		r, w := utf8.DecodeRuneInString(p.s[p.pos:])
		if isDelim(r) || unicode.IsSpace(r) {
			break
		}
		p.pos += w
	}
	return p.s[start:p.pos], nil
}

func isDelim(r rune) bool {
	switch r {
	case '(', ')', ',', ':', ';', '[', ']', 0:
		return true
	}
	return false
}

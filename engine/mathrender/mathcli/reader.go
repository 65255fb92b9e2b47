package main

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathbuild"
	"github.com/npillmayer/tymath/engine/parsenode"
)

// formulaReader reads formulas in a small subset of TeX notation:
// characters and control words from the symbol table, groups in braces,
// super- and subscripts, accents and operators. It is meant for quick
// experiments at the prompt, not as a TeX parser.
type formulaReader struct {
	table  *symbols.Table
	tokens []string
	pos    int
}

// readFormula parses input into a list of parse nodes.
func readFormula(input string, table *symbols.Table) ([]parsenode.Node, error) {
	r := &formulaReader{table: table, tokens: tokenize(input)}
	nodes, err := r.list(false)
	if err != nil {
		return nil, err
	}
	if r.pos < len(r.tokens) {
		return nil, core.Error(core.EINVALID, "unbalanced '}' at token %d", r.pos)
	}
	return nodes, nil
}

// tokenize splits input into grapheme clusters, then joins control words.
func tokenize(input string) []string {
	var tokens []string
	graphemes := mathbuild.Graphemes(input)
	for i := 0; i < len(graphemes); i++ {
		g := graphemes[i]
		if g != "\\" || i+1 == len(graphemes) {
			tokens = append(tokens, g)
			continue
		}
		i++
		word := "\\" + graphemes[i]
		if isLetter(graphemes[i]) {
			for i+1 < len(graphemes) && isLetter(graphemes[i+1]) {
				i++
				word += graphemes[i]
			}
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func isLetter(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return r < unicode.MaxASCII && unicode.IsLetter(r)
}

func (r *formulaReader) peek() string {
	if r.pos < len(r.tokens) {
		return r.tokens[r.pos]
	}
	return ""
}

func (r *formulaReader) list(inGroup bool) ([]parsenode.Node, error) {
	var nodes []parsenode.Node
	for r.pos < len(r.tokens) {
		tok := r.peek()
		switch {
		case tok == "}":
			if inGroup {
				r.pos++
			}
			return nodes, nil
		case tok == "^" || tok == "_":
			r.pos++
			if err := r.script(&nodes, tok); err != nil {
				return nil, err
			}
			continue
		case strings.TrimSpace(tok) == "":
			r.pos++
			continue
		}
		n, err := r.atom()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if inGroup {
		return nil, core.Error(core.EINVALID, "missing '}'")
	}
	return nodes, nil
}

func (r *formulaReader) script(nodes *[]parsenode.Node, marker string) error {
	arg, err := r.argument()
	if err != nil {
		return err
	}
	var ss *parsenode.SupSub
	if k := len(*nodes) - 1; k >= 0 {
		if prev, ok := (*nodes)[k].(*parsenode.SupSub); ok {
			ss = prev
		} else {
			ss = &parsenode.SupSub{Base: parsenode.InMath, Nucleus: (*nodes)[k]}
			(*nodes)[k] = ss
		}
	} else {
		ss = &parsenode.SupSub{Base: parsenode.InMath}
		*nodes = append(*nodes, ss)
	}
	if marker == "^" {
		if ss.Sup != nil {
			return core.Error(core.EINVALID, "double superscript")
		}
		ss.Sup = arg
	} else {
		if ss.Sub != nil {
			return core.Error(core.EINVALID, "double subscript")
		}
		ss.Sub = arg
	}
	return nil
}

// argument reads a single atom or a group in braces.
func (r *formulaReader) argument() (parsenode.Node, error) {
	for strings.TrimSpace(r.peek()) == "" && r.pos < len(r.tokens) {
		r.pos++
	}
	if r.pos >= len(r.tokens) {
		return nil, core.Error(core.EINVALID, "missing argument at end of formula")
	}
	return r.atom()
}

func (r *formulaReader) atom() (parsenode.Node, error) {
	tok := r.peek()
	r.pos++
	if tok == "{" {
		body, err := r.list(true)
		if err != nil {
			return nil, err
		}
		return &parsenode.OrdGroup{Base: parsenode.InMath, Body: body}, nil
	}
	if tok == "\\\\" {
		return &parsenode.Newline{Base: parsenode.InMath}, nil
	}
	info, ok := r.table.Lookup(symbols.Math, tok)
	if !ok {
		if strings.HasPrefix(tok, "\\") {
			return nil, core.Error(core.EINVALID, "undefined control sequence %s", tok)
		}
		return &parsenode.TextOrd{Base: parsenode.InMath, Text: tok}, nil
	}
	switch info.Group {
	case symbols.MathOrd:
		return &parsenode.MathOrd{Base: parsenode.InMath, Text: tok}, nil
	case symbols.OpToken:
		return &parsenode.Op{Base: parsenode.InMath, Name: tok, Symbol: true, Limits: true}, nil
	case symbols.Spacing:
		return &parsenode.Spacing{Base: parsenode.InMath, Text: tok}, nil
	case symbols.Accent:
		body, err := r.argument()
		if err != nil {
			return nil, err
		}
		return &parsenode.Accent{Base: parsenode.InMath, Label: tok, Body: body}, nil
	}
	if info.Group.IsAtom() {
		return &parsenode.Atom{Base: parsenode.InMath, Family: info.Group, Text: tok}, nil
	}
	return &parsenode.TextOrd{Base: parsenode.InMath, Text: tok}, nil
}

package symbols

import (
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// Mode is the typesetting mode of a symbol.
type Mode int8

// Math mode and text mode
const (
	Math Mode = iota
	Text
)

func (m Mode) String() string {
	if m == Text {
		return "text"
	}
	return "math"
}

// Font is the symbol font a symbol is defined for.
type Font string

// Symbol fonts
const (
	Main Font = "main"
	AMS  Font = "ams"
)

// Group is the atom group of a symbol.
type Group string

// Atom groups
const (
	Accent  Group = "accent-token"
	Bin     Group = "bin"
	Close   Group = "close"
	Inner   Group = "inner"
	MathOrd Group = "mathord"
	OpToken Group = "op-token"
	Open    Group = "open"
	Punct   Group = "punct"
	Rel     Group = "rel"
	Spacing Group = "spacing"
	TextOrd Group = "textord"
)

// IsAtom is true for groups which form atoms of the spacing algorithm
// on their own (bin, rel, open, close, punct, inner).
func (g Group) IsAtom() bool {
	switch g {
	case Bin, Close, Inner, Open, Punct, Rel:
		return true
	}
	return false
}

// CharInfo is an entry of the symbol table.
type CharInfo struct {
	Font    Font
	Group   Group
	Replace string // replacement text, may be empty
}

// Table is a symbol table for math and text mode. It is safe for concurrent
// reads once populated.
type Table struct {
	mu    sync.RWMutex
	modes [2]map[string]CharInfo
	index *trie.Trie // command names, for prefix search
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		modes: [2]map[string]CharInfo{
			make(map[string]CharInfo, 1024),
			make(map[string]CharInfo, 512),
		},
		index: trie.New(),
	}
}

// Define enters a symbol into the table. If acceptUnicodeChar is set and a
// replacement is given, the replacement character is entered as a name of
// its own, sharing the entry.
func (t *Table) Define(mode Mode, font Font, group Group, replace string, name string, acceptUnicodeChar bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info := CharInfo{Font: font, Group: group, Replace: replace}
	t.modes[mode][name] = info
	if len(name) > 1 && name[0] == '\\' {
		t.index.Add(name, mode)
	}
	if acceptUnicodeChar && replace != "" {
		t.modes[mode][replace] = info
	}
}

// Lookup finds a symbol by name.
func (t *Table) Lookup(mode Mode, name string) (CharInfo, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	info, ok := t.modes[mode][name]
	return info, ok
}

// Replacement returns the text to render for a symbol name. If the symbol has
// no replacement, value is returned unchanged.
func (t *Table) Replacement(mode Mode, value string) string {
	if info, ok := t.Lookup(mode, value); ok && info.Replace != "" {
		return info.Replace
	}
	return value
}

// Len returns the number of names defined for a mode.
func (t *Table) Len(mode Mode) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.modes[mode])
}

// Characters returns all single characters appearing in the table for a mode,
// either as a name or as a replacement.
func (t *Table) Characters(mode Mode) []rune {
	t.mu.RLock()
	defer t.mu.RUnlock()
	seen := make(map[rune]bool, len(t.modes[mode]))
	var chars []rune
	add := func(s string) {
		if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) && !seen[r] {
			seen[r] = true
			chars = append(chars, r)
		}
	}
	for name, info := range t.modes[mode] {
		add(name)
		add(info.Replace)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// PrefixSearch returns all command names starting with prefix, sorted.
func (t *Table) PrefixSearch(prefix string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := t.index.PrefixSearch(prefix)
	sort.Strings(names)
	return names
}

// ---------------------------------------------------------------------------

var defaultTable *Table
var defaultTableCreation sync.Once

// Default returns the application-wide table of predefined symbols.
// It is populated on first use.
func Default() *Table {
	defaultTableCreation.Do(func() {
		defaultTable = NewTable()
		DefineAll(defaultTable)
		tracer().Debugf("symbol table holds %d math and %d text symbols",
			defaultTable.Len(Math), defaultTable.Len(Text))
	})
	return defaultTable
}

package symbols

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// AccentRelation relates a combining character to the accent commands
// producing it in text mode and in math mode. Math may be empty if there is
// no math mode equivalent.
type AccentRelation struct {
	Text string
	Math string
}

// UnicodeAccents maps combining characters to accent commands.
var UnicodeAccents = map[rune]AccentRelation{
	'\u0301': {"\\'", "\\acute"},
	'\u0300': {"\\`", "\\grave"},
	'\u0308': {"\\\"", "\\ddot"},
	'\u0303': {"\\~", "\\tilde"},
	'\u0304': {"\\=", "\\bar"},
	'\u0306': {"\\u", "\\breve"},
	'\u030c': {"\\v", "\\check"},
	'\u0302': {"\\^", "\\hat"},
	'\u0307': {"\\.", "\\dot"},
	'\u030a': {"\\r", "\\mathring"},
	'\u030b': {"\\H", ""},
}

// AccentCommand returns the accent command for a combining character in a
// given mode.
func AccentCommand(combining rune, mode Mode) (string, bool) {
	rel, ok := UnicodeAccents[combining]
	if !ok {
		return "", false
	}
	if mode == Text {
		return rel.Text, true
	}
	return rel.Math, rel.Math != ""
}

var unicodeSymbols map[rune]string
var unicodeSymbolsCreation sync.Once

// precomposed characters are searched for in these blocks.
var precomposedBlocks = []struct{ lo, hi rune }{
	{0x00c0, 0x024f}, // Latin-1 Supplement, Latin Extended-A/B
	{0x0386, 0x03ce}, // Greek with tonos and dialytika
	{0x1e00, 0x1eff}, // Latin Extended Additional
}

// UnicodeSymbols returns a map from precomposed characters to their
// decomposition into a base letter followed by combining accents, restricted
// to accents present in UnicodeAccents. For example, 'ǟ' maps to "ǟ".
func UnicodeSymbols() map[rune]string {
	unicodeSymbolsCreation.Do(func() {
		unicodeSymbols = make(map[rune]string, 256)
		for _, block := range precomposedBlocks {
			for r := block.lo; r <= block.hi; r++ {
				if d, ok := decomposeAccented(r); ok {
					unicodeSymbols[r] = d
				}
			}
		}
		tracer().Debugf("%d precomposed accented characters known", len(unicodeSymbols))
	})
	return unicodeSymbols
}

func decomposeAccented(r rune) (string, bool) {
	d := []rune(norm.NFD.String(string(r)))
	if len(d) < 2 || !unicode.IsLetter(d[0]) {
		return "", false
	}
	for _, c := range d[1:] {
		if _, ok := UnicodeAccents[c]; !ok {
			return "", false
		}
	}
	return string(d), true
}

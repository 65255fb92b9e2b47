package mathbuild

import (
	"testing"

	"github.com/npillmayer/tymath/core/font"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// testMetrics is a small set of metric tables with round numbers.
func testMetrics() *font.MetricTables {
	mt := font.NewMetricTables()
	for _, name := range font.MathFontNames() {
		mt.AddFont(name)
	}
	add := func(fontName, chars string, m font.CharacterMetrics) {
		for _, r := range chars {
			mt.Add(fontName, r, m)
		}
	}
	add("Math-Italic", "abcx", font.CharacterMetrics{Height: 0.43, Italic: 0.02, Width: 0.5})
	add("Math-Italic", "y", font.CharacterMetrics{Height: 0.43, Depth: 0.19, Italic: 0.04, Width: 0.49})
	add("Main-Italic", "0123456789", font.CharacterMetrics{Height: 0.64, Italic: 0.05, Width: 0.5})
	add("Main-Regular", "0123456789", font.CharacterMetrics{Height: 0.64, Width: 0.5})
	add("Main-Regular", "abcdeinstxyM ", font.CharacterMetrics{Height: 0.44, Width: 0.5})
	add("Main-Regular", "+=−", font.CharacterMetrics{Height: 0.58, Depth: 0.08, Width: 0.78})
	add("Main-Regular", "()", font.CharacterMetrics{Height: 0.75, Depth: 0.25, Width: 0.39})
	add("Main-Regular", "^", font.CharacterMetrics{Height: 0.69, Width: 0.5})
	add("Main-Bold", "x+", font.CharacterMetrics{Height: 0.45, Width: 0.6})
	add("SansSerif-Regular", "abc", font.CharacterMetrics{Height: 0.44, Width: 0.45})
	add("Size1-Regular", "∑∬", font.CharacterMetrics{Height: 0.75, Depth: 0.25, Width: 1.05})
	add("Size2-Regular", "∑∬", font.CharacterMetrics{Height: 1.05, Depth: 0.35, Width: 1.44})
	return mt
}

func testEnvironment() *Environment {
	return NewEnvironmentBuilder(nil).WithMetrics(testMetrics()).Environment()
}

func mathord(text string) parsenode.Node {
	return &parsenode.MathOrd{Base: parsenode.InMath, Text: text}
}

func textord(text string) parsenode.Node {
	return &parsenode.TextOrd{Base: parsenode.InMath, Text: text}
}

func bin(text string) parsenode.Node {
	return &parsenode.Atom{Base: parsenode.InMath, Family: symbols.Bin, Text: text}
}

func rel(text string) parsenode.Node {
	return &parsenode.Atom{Base: parsenode.InMath, Family: symbols.Rel, Text: text}
}

func space(text string) parsenode.Node {
	return &parsenode.Spacing{Base: parsenode.InMath, Text: text}
}

// classSeq describes a horizontal list by atom classes. Explicit spaces are
// "space", inserted glue is "glue", line breaks are "newline".
func classSeq(nodes []rnode.Node) []string {
	seq := make([]string, len(nodes))
	for i, n := range nodes {
		m := n.Metrics()
		switch {
		case m.HasClass(rnode.Newline):
			seq[i] = "newline"
		case m.HasClass(rnode.MSpace) && len(rnode.Children(n)) == 0 && !m.Style.MarginRight.IsNone():
			seq[i] = "glue"
		case m.HasClass(rnode.MSpace):
			seq[i] = "space"
		default:
			c, _ := m.Classes.AtomClass()
			seq[i] = string(c)
		}
	}
	return seq
}

// must stops the test on a build error, as in must(t)(env.BuildHTML(...)).
func must(t *testing.T) func([]rnode.Node, error) []rnode.Node {
	t.Helper()
	return func(nodes []rnode.Node, err error) []rnode.Node {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return nodes
	}
}

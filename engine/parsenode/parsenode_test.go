package parsenode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/dimen"
	"github.com/npillmayer/tymath/core/symbols"
)

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.parse")
	defer teardown()
	//
	data := `[
	  { "type": "mathord", "mode": "math", "text": "x" },
	  { "type": "atom", "mode": "math", "family": "bin", "text": "+" },
	  { "type": "supsub", "base": { "type": "mathord", "text": "y" },
	                      "sup": { "type": "textord", "text": "2" } },
	  { "type": "kern", "dimension": { "number": 3, "unit": "mu" } },
	  { "type": "text", "mode": "math", "body": [ { "type": "textord", "mode": "text", "text": "a" } ] },
	  { "type": "frac", "fields": { "hasBarLine": true } }
	]`
	nodes, err := Decode([]byte(data))
	require.NoError(t, err)
	require.Len(t, nodes, 6)
	assert.Equal(t, &MathOrd{Base: InMath, Text: "x"}, nodes[0])
	atom := nodes[1].(*Atom)
	assert.Equal(t, symbols.Bin, atom.Family)
	ss := nodes[2].(*SupSub)
	assert.Equal(t, TypeMathOrd, ss.Nucleus.Type())
	assert.Equal(t, TypeTextOrd, ss.Sup.Type())
	assert.Nil(t, ss.Sub)
	assert.Equal(t, dimen.Mu(3), nodes[3].(*Kern).Dimension)
	txt := nodes[4].(*Text)
	assert.Equal(t, symbols.Text, txt.Body[0].Mode())
	custom := nodes[5].(*Custom)
	assert.Equal(t, NodeType("frac"), custom.Type())
	assert.Equal(t, true, custom.Fields["hasBarLine"])
}

func TestDecodeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.parse")
	defer teardown()
	//
	for _, data := range []string{
		`{ "type": "atom", "family": "mathord", "text": "x" }`,
		`{ "mode": "math", "text": "x" }`,
		`{ "type": "mathord", "mode": "vertical", "text": "x" }`,
		`[ { "type": "mathord" `,
	} {
		_, err := Decode([]byte(data))
		assert.Error(t, err, data)
		assert.Equal(t, core.EINVALID, core.Code(err), data)
	}
}

func TestEncodeDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tymath.parse")
	defer teardown()
	//
	formula := []Node{
		&Color{Base: InMath, Color: "blue", Body: []Node{
			&MathOrd{Base: InMath, Text: "a"},
			&Atom{Base: InMath, Family: symbols.Rel, Text: "="},
		}},
		&Accent{Base: InMath, Label: "\\vec", Body: &MathOrd{Base: InMath, Text: "v"}},
		&Font{Base: InMath, Font: "mathbf", Body: &MathOrd{Base: InMath, Text: "x"}},
		&Spacing{Base: InMath, Text: "\\nobreak"},
		&Newline{Base: InMath},
		&Rule{Base: InMath, Width: dimen.Em(1), Height: dimen.Em(0.5), Shift: dimen.Em(0)},
	}
	data, err := Encode(formula)
	require.NoError(t, err)
	back, err := Decode(data)
	require.NoError(t, err)
	if diff := cmp.Diff(formula, back); diff != "" {
		t.Errorf("formula changed after encoding (-want +got):\n%s", diff)
	}
}

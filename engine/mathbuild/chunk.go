package mathbuild

import (
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// BuildHTML builds a complete formula. The result is a sequence of
// unbreakable chunks, each a span of class base (see BuildUnbreakable),
// interspersed with forced line breaks.
//
// A formula may be broken after a relation or a binary operator on its
// outermost level (TeXbook, p. 173), and at explicit \allowbreak glue.
// Glue following such a break point stays with the chunk before it;
// a \nobreak among that glue suppresses the break.
func (env *Environment) BuildHTML(tree []parsenode.Node, opts *mathstyle.Options) ([]rnode.Node, error) {
	if opts == nil {
		opts = env.Options()
	}
	expression, err := env.BuildExpression(tree, opts, true)
	if err != nil {
		return nil, err
	}
	return chunkExpression(expression, opts), nil
}

func chunkExpression(expression []rnode.Node, opts *mathstyle.Options) []rnode.Node {
	var chunks, part []rnode.Node
	flush := func() {
		if len(part) > 0 {
			chunks = append(chunks, BuildUnbreakable(part, opts))
			part = nil
		}
	}
	for i := 0; i < len(expression); i++ {
		n := expression[i].Metrics()
		if n.HasClass(rnode.Newline) {
			flush()
			chunks = append(chunks, expression[i])
			continue
		}
		part = append(part, expression[i])
		if n.HasClass(rnode.MBin) || n.HasClass(rnode.MRel) || n.HasClass(rnode.AllowBreak) {
			nobreak := false
			for i+1 < len(expression) && isGlue(expression[i+1]) {
				i++
				part = append(part, expression[i])
				if expression[i].Metrics().HasClass(rnode.NoBreak) {
					nobreak = true
				}
			}
			if !nobreak {
				flush()
			}
		}
	}
	flush()
	tracer().Debugf("formula split into %d chunks", len(chunks))
	return chunks
}

// isGlue is true for spaces other than forced line breaks.
func isGlue(n rnode.Node) bool {
	m := n.Metrics()
	return m.HasClass(rnode.MSpace) && !m.HasClass(rnode.Newline)
}

// BuildUnbreakable wraps nodes into a span of class base. A strut is
// prepended as the first child: it has no metrics of its own, but its
// style spans the height and depth of the chunk, so that a painter aligning
// chunks on a common baseline reserves the full vertical extent.
func BuildUnbreakable(nodes []rnode.Node, opts *mathstyle.Options) *rnode.Span {
	body := MakeSpan([]rnode.Class{rnode.Base}, nodes, opts)
	strut := MakeSpan([]rnode.Class{rnode.Strut}, nil, nil)
	strut.Style.Height = rnode.SomeEm(body.Height + body.Depth)
	strut.Style.VerticalAlign = rnode.SomeEm(-body.Depth)
	body.Prepend(strut)
	return body
}

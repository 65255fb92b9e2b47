package mathbuild

import (
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// BuildGroup builds a single parse node with the builder registered for its
// type. A nil node results in an empty span.
//
// If base is given and its size differs from the size of opts, the result is
// wrapped into a span with sizing classes, and the wrapper's height and depth
// are scaled by the ratio of the size multipliers.
//
// Builders nest BuildGroup calls for their children. If the nesting depth
// reaches the limit of the environment, an error wrapping
// core.ErrNestingTooDeep is returned.
func (env *Environment) BuildGroup(node parsenode.Node, opts *mathstyle.Options,
	base *mathstyle.Options) (rnode.Node, error) {
	//
	if node == nil {
		return MakeSpan(nil, nil, nil), nil
	}
	if opts.Nesting() >= env.maxNesting {
		return nil, core.NestingTooDeep(env.maxNesting)
	}
	builder, err := env.builderFor(node)
	if err != nil {
		return nil, err
	}
	group, err := builder(env, node, opts.Nested())
	if err != nil {
		return nil, err
	}
	if base != nil && opts.Size() != base.Size() {
		wrapper := MakeSpan(asClasses(opts.SizingClasses(base)), []rnode.Node{group}, opts)
		multiplier := opts.SizeMultiplier() / base.SizeMultiplier()
		wrapper.Height *= multiplier
		wrapper.Depth *= multiplier
		return wrapper, nil
	}
	return group, nil
}

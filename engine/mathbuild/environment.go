package mathbuild

import (
	"sync"

	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/font"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
)

// GroupBuilder builds the render tree for a single parse node.
type GroupBuilder func(env *Environment, node parsenode.Node, opts *mathstyle.Options) (rnode.Node, error)

// Environment holds everything a build needs besides the parse tree and the
// options: symbol and metric tables, the builder registry and engine
// configuration. An Environment is immutable and safe for concurrent use.
type Environment struct {
	builders   map[parsenode.NodeType]GroupBuilder
	symbols    *symbols.Table
	metrics    *font.MetricTables
	maxNesting int
	baseSize   int
	maxSize    float64
	display    bool
}

// EnvironmentBuilder collects the parts of an Environment.
// It must not be used after Environment() has been called.
type EnvironmentBuilder struct {
	env *Environment
}

// NewEnvironmentBuilder starts a new environment, configured from a set of
// typesetting registers, with all built-in node builders registered. If regs
// is nil, default registers are used. The symbol table and metric tables
// default to symbols.Default() and font.GoFontMetrics().
func NewEnvironmentBuilder(regs *params.TypesettingRegisters) *EnvironmentBuilder {
	if regs == nil {
		regs = params.NewTypesettingRegisters()
	}
	env := &Environment{
		builders:   make(map[parsenode.NodeType]GroupBuilder, len(builtinBuilders)),
		maxNesting: regs.N(params.P_MAXNESTING),
		baseSize:   regs.N(params.P_BASESIZE),
		maxSize:    regs.F(params.P_MAXSIZE),
		display:    regs.B(params.P_DISPLAYMODE),
	}
	for t, b := range builtinBuilders {
		env.builders[t] = b
	}
	return &EnvironmentBuilder{env: env}
}

// WithSymbols sets the symbol table.
func (eb *EnvironmentBuilder) WithSymbols(table *symbols.Table) *EnvironmentBuilder {
	eb.env.symbols = table
	return eb
}

// WithMetrics sets the font metric tables.
func (eb *EnvironmentBuilder) WithMetrics(metrics *font.MetricTables) *EnvironmentBuilder {
	eb.env.metrics = metrics
	return eb
}

// RegisterBuilder adds a builder for a node type, replacing any builder
// previously registered for this type. Custom nodes are dispatched by
// their Kind. A nil builder removes the registration.
func (eb *EnvironmentBuilder) RegisterBuilder(nodeType parsenode.NodeType, builder GroupBuilder) *EnvironmentBuilder {
	if builder == nil {
		delete(eb.env.builders, nodeType)
		return eb
	}
	eb.env.builders[nodeType] = builder
	return eb
}

// Environment returns the assembled environment.
func (eb *EnvironmentBuilder) Environment() *Environment {
	env := eb.env
	eb.env = nil
	if env.symbols == nil {
		env.symbols = symbols.Default()
	}
	if env.metrics == nil {
		env.metrics = font.GoFontMetrics()
	}
	if env.maxNesting <= 0 {
		env.maxNesting = 128
	}
	tracer().Debugf("math environment with %d builders, %d fonts", len(env.builders),
		len(env.metrics.Fonts()))
	return env
}

// NewEnvironment creates an environment from a set of registers, with
// default tables and the built-in builders.
func NewEnvironment(regs *params.TypesettingRegisters) *Environment {
	return NewEnvironmentBuilder(regs).Environment()
}

var defaultEnv *Environment
var defaultEnvOnce sync.Once

// DefaultEnvironment returns a shared environment with default settings.
func DefaultEnvironment() *Environment {
	defaultEnvOnce.Do(func() {
		defaultEnv = NewEnvironment(nil)
	})
	return defaultEnv
}

// Symbols returns the symbol table of env.
func (env *Environment) Symbols() *symbols.Table {
	return env.symbols
}

// Metrics returns the font metric tables of env.
func (env *Environment) Metrics() *font.MetricTables {
	return env.metrics
}

// MaxNesting is the maximum nesting depth of groups.
func (env *Environment) MaxNesting() int {
	return env.maxNesting
}

// Options returns the initial options for a formula: display or text style,
// depending on the configuration, at base size.
func (env *Environment) Options() *mathstyle.Options {
	style := mathstyle.Text
	if env.display {
		style = mathstyle.Display
	}
	return mathstyle.NewOptions(style, env.baseSize, env.maxSize)
}

// Builder returns the builder registered for a node type.
func (env *Environment) Builder(nodeType parsenode.NodeType) (GroupBuilder, bool) {
	b, ok := env.builders[nodeType]
	return b, ok
}

func (env *Environment) builderFor(node parsenode.Node) (GroupBuilder, error) {
	t := node.Type()
	b, ok := env.builders[t]
	if !ok {
		return nil, core.UnknownNodeType(string(t))
	}
	return b, nil
}

// LookupSymbol applies the replacement of a symbol and looks up the metrics
// of the result. An unknown symbol is not an error: the value is returned
// unchanged with metrics of nil. An error is returned only if the font has
// no metric table at all.
func (env *Environment) LookupSymbol(value, fontName string, mode symbols.Mode) (string, *font.CharacterMetrics, error) {
	value = env.symbols.Replacement(mode, value)
	m, err := env.metrics.CharacterMetrics(value, fontName, mode)
	return value, m, err
}

// HasGlyph is true if fontName has metrics for value.
func (env *Environment) HasGlyph(value, fontName string, mode symbols.Mode) bool {
	_, m, err := env.LookupSymbol(value, fontName, mode)
	return err == nil && m != nil
}

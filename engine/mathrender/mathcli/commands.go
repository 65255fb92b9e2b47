package main

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/tymath/core"
	"github.com/npillmayer/tymath/core/symbols"
	"github.com/npillmayer/tymath/engine/htmlexport"
	"github.com/npillmayer/tymath/engine/mathdebug"
	"github.com/npillmayer/tymath/engine/mathrender"
	"github.com/npillmayer/tymath/engine/mathstyle"
	"github.com/npillmayer/tymath/engine/parsenode"
	"github.com/npillmayer/tymath/engine/rnode"
	"github.com/npillmayer/tymath/engine/rnode/xpathadapter"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	renderer *mathrender.Renderer
	opts     *mathstyle.Options
	ptSize   float64 // points per em
	formula  []parsenode.Node
	chunks   []rnode.Node
}

func newIntp(renderer *mathrender.Renderer, ptSize float64) *Intp {
	return &Intp{
		renderer: renderer,
		opts:     renderer.Environment().Options(),
		ptSize:   ptSize,
	}
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	ops []Op
}

const (
	QUIT int = iota
	HELP
	FORMULA
	JSON
	STYLE
	SIZE
	COLOR
	SHOW
	HTML
	SELECT
	XPATH
	DOT
	SYMBOLS
	STATS
)

// Commands taking the rest of the line as their argument
var lineCommands = map[string]int{
	"tex":    FORMULA,
	"select": SELECT,
	"xpath":  XPATH,
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	if line[0] == '{' || line[0] == '[' {
		return &Command{ops: []Op{{code: JSON, arg: line}}}, nil
	}
	if c := strings.SplitN(line, ":", 2); len(c) == 2 {
		if code, ok := lineCommands[strings.ToLower(c[0])]; ok {
			return &Command{ops: []Op{{code: code, arg: c[1]}}}, nil
		}
	}
	command := &Command{}
	for _, step := range strings.Fields(line) {
		c := strings.SplitN(step, ":", 2) // e.g.  "style:display" or "dot:/tmp/f.dot" or "show"
		op := Op{arg: getOptArg(c, 1)}
		switch strings.ToLower(c[0]) {
		case "quit":
			op.code = QUIT
		case "help":
			op.code = HELP
		case "style":
			op.code = STYLE
		case "size":
			op.code = SIZE
		case "color":
			op.code = COLOR
		case "show":
			op.code = SHOW
		case "html":
			op.code = HTML
		case "dot":
			op.code = DOT
		case "symbols":
			op.code = SYMBOLS
		case "stats":
			op.code = STATS
		default:
			return nil, core.Error(core.EINVALID, "unknown command %q, try 'help'", c[0])
		}
		tracer().Debugf("parse command = %v", c)
		command.ops = append(command.ops, op)
	}
	return command, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	for _, c := range cmd.ops {
		switch c.code {
		case QUIT:
			return true, nil
		case HELP:
			help(c.arg)
		case FORMULA:
			formula, err := readFormula(c.arg, intp.renderer.Environment().Symbols())
			if err != nil {
				return false, err
			}
			if err := intp.build(formula); err != nil {
				return false, err
			}
		case JSON:
			formula, err := parsenode.Decode([]byte(c.arg))
			if err != nil {
				return false, err
			}
			if err := intp.build(formula); err != nil {
				return false, err
			}
		case STYLE:
			style, ok := mathstyle.StyleByName(c.arg)
			if !ok {
				return false, core.Error(core.EINVALID, "unknown style %q", c.arg)
			}
			intp.opts = intp.opts.HavingStyle(style)
			if err := intp.rebuild(); err != nil {
				return false, err
			}
		case SIZE:
			size, err := strconv.Atoi(c.arg)
			if err != nil || size < 1 || size > 11 {
				return false, core.Error(core.EINVALID, "size must be 1…11, is %q", c.arg)
			}
			intp.opts = intp.opts.HavingSize(size)
			if err := intp.rebuild(); err != nil {
				return false, err
			}
		case COLOR:
			intp.opts = intp.opts.WithColor(c.arg)
			if err := intp.rebuild(); err != nil {
				return false, err
			}
		case SHOW:
			intp.show()
		case HTML:
			s, err := htmlexport.String(htmlRoot(intp.chunks))
			if err != nil {
				return false, err
			}
			pterm.Println(s)
		case SELECT:
			found, err := htmlexport.Select(htmlexport.ExportAll(intp.chunks), strings.TrimSpace(c.arg))
			if err != nil {
				return false, err
			}
			pterm.Printfln("%d elements match", len(found))
			for _, h := range found {
				decls, _ := htmlexport.ParseStyle(h)
				pterm.Printfln("  <%s> %q %v", h.Data, htmlexport.Text(h), decls)
			}
		case XPATH:
			found, err := xpathadapter.Select(htmlRoot(intp.chunks), strings.TrimSpace(c.arg))
			if err != nil {
				return false, err
			}
			pterm.Printfln("%d nodes selected", len(found))
			for _, n := range found {
				pterm.Println("  " + intp.describe(n))
			}
		case DOT:
			if err := intp.writeDot(c.arg); err != nil {
				return false, err
			}
		case SYMBOLS:
			names := intp.renderer.Environment().Symbols().PrefixSearch("\\" + strings.TrimPrefix(c.arg, "\\"))
			pterm.Printfln("%d symbols: %s", len(names), strings.Join(names, " "))
		case STATS:
			pterm.Println(intp.renderer.Stats().String())
		}
	}
	return false, nil
}

func (intp *Intp) build(formula []parsenode.Node) error {
	intp.formula = formula
	return intp.rebuild()
}

func (intp *Intp) rebuild() error {
	if intp.formula == nil {
		return nil
	}
	chunks, err := intp.renderer.Render(context.Background(), intp.formula, intp.opts)
	if err != nil {
		return err
	}
	intp.chunks = chunks
	pterm.Printfln("%d chunks in %s", len(chunks), intp.opts)
	return nil
}

// htmlRoot collects the chunks of a formula in a single span.
func htmlRoot(chunks []rnode.Node) *rnode.Span {
	return rnode.NewSpan(nil, chunks...)
}

func (intp *Intp) show() {
	for i, ch := range intp.chunks {
		m := ch.Metrics()
		pterm.Info.Printfln("chunk #%d: height %s, depth %s", i, intp.dimen(m.Height), intp.dimen(m.Depth))
		pterm.Println(rnode.Dump(ch))
	}
}

func (intp *Intp) describe(n rnode.Node) string {
	m := n.Metrics()
	return rnode.String(n) + " = " + intp.dimen(m.Height+m.Depth) + " total"
}

func (intp *Intp) dimen(em float64) string {
	return strconv.FormatFloat(em, 'f', 3, 64) + "em (" +
		strconv.FormatFloat(em*intp.ptSize, 'f', 2, 64) + "pt)"
}

func (intp *Intp) writeDot(filename string) error {
	if filename == "" {
		filename = "formula.dot"
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := mathdebug.ToGraphViz(htmlRoot(intp.chunks), f); err != nil {
		return err
	}
	pterm.Info.Printfln("written to %s, render with 'dot -Tsvg %s'", filename, filename)
	return nil
}

// symbolCompleter completes control words from the symbol table.
type symbolCompleter struct {
	table *symbols.Table
}

// Do is part of interface readline.AutoCompleter.
func (sc *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && line[start-1] != '\\' && isLetter(string(line[start-1])) {
		start--
	}
	if start == 0 || line[start-1] != '\\' {
		return nil, 0
	}
	prefix := string(line[start-1 : pos])
	var candidates [][]rune
	for _, name := range sc.table.PrefixSearch(prefix) {
		candidates = append(candidates, []rune(name[len(prefix):]))
	}
	return candidates, len(prefix)
}

var _ readline.AutoCompleter = &symbolCompleter{}

func help(topic string) {
	switch strings.ToLower(topic) {
	case "tex":
		pterm.Info.Println("TeX notation")
		pterm.Println(`
	tex:<formula> reads a formula in a subset of TeX:
	  letters, digits and symbols      x + 2 \alpha \le
	  groups                           {a+b}
	  scripts                          x^2  x_i  x_i^2  \sum_{i=1}^n
	  accents                          \hat x  \vec{v}
	  line breaks                      \\
	Complete control words with <tab>.
	`)
	case "query", "select", "xpath":
		pterm.Info.Println("Queries")
		pterm.Println(`
	select:<css selector>   query the HTML export, e.g.  select:.mbin
	xpath:<expression>      query the render tree, e.g.  xpath://symbol[@depth > 0]
	  elements are span, symbol, fragment, pathspan and paths;
	  attributes are class, height, depth, width and italic
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	tex:<formula>          read a formula in TeX notation (help tex)
	[ ... ] or { ... }     read a formula as a JSON parse tree
	style:<name>           display, text, script or scriptscript
	size:<n>               size index 1…11
	color:<color>          set the color
	show                   dump the chunks of the formula
	html                   print the formula as HTML
	select:<selector>      CSS selector query (help query)
	xpath:<expression>     XPath query (help query)
	dot:<file>             write a GraphViz file
	symbols:<prefix>       list control words
	stats                  render cache statistics
	quit
	`)
	}
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

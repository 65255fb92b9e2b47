/*
Command mathcli is an interactive tool for inspecting math layouts.

Formulas are entered either as JSON parse trees or in a small subset of TeX
notation ("tex:x^2+\alpha"), and the resulting render trees may be shown as
box dumps, HTML or GraphViz, or queried with XPath and CSS selectors.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/tymath/core/font"
	params "github.com/npillmayer/tymath/core/parameters"
	"github.com/npillmayer/tymath/engine/mathbuild"
	"github.com/npillmayer/tymath/engine/mathrender"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tymath.render'
func tracer() tracing.Trace {
	return tracing.Select("tymath.render")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.tymath.build":  "Error",
		"trace.tymath.render": "Info",
		"trace.tymath.font":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	display := flag.Bool("display", false, "Start in display style")
	size := flag.Int("size", 6, "Base size index 1…11")
	ptsize := flag.Float64("pt", 10, "Size of the base font in points")
	cache := flag.Int("cache", 256, "Capacity of the render cache")
	nesting := flag.Int("nesting", 128, "Maximum nesting of groups")
	metrics := flag.String("metrics", "", "JSON file with font metrics to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the math layout CLI")
	//
	// configuration registers are overridden by flags
	regs := params.NewTypesettingRegisters()
	regs.Push(params.P_DISPLAYMODE, *display)
	regs.Push(params.P_BASESIZE, *size)
	regs.Push(params.P_PTSIZE, *ptsize)
	regs.Push(params.P_CACHESIZE, *cache)
	regs.Push(params.P_MAXNESTING, *nesting)
	envBuilder := mathbuild.NewEnvironmentBuilder(regs)
	if *metrics != "" {
		mt, err := loadMetrics(*metrics)
		if err != nil {
			tracer().Errorf(err.Error())
			os.Exit(2)
		}
		envBuilder.WithMetrics(mt)
	}
	env := envBuilder.Environment()
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "math > ",
		AutoComplete: &symbolCompleter{table: env.Symbols()},
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := newIntp(mathrender.NewRenderer(env, regs), regs.F(params.P_PTSIZE))
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	tracer().SetTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

func loadMetrics(filename string) (*font.MetricTables, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	mt, err := font.LoadJSON(f)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded metrics for fonts %s", strings.Join(mt.Fonts(), ", "))
	return mt, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

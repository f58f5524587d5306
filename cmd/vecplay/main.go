/*
Command vecplay replays a scenario of static vector operations from a YAML
file and prints the final storage block.

	vecplay [--format console|dot|html] [--trace level] scenario.yaml

Every step is logged with its result and the vector's contents afterwards.
Errors reported by checked operations (at, trypush) are logged and replay
continues; a contract violation (e.g. pop on an empty vector) stops the
replay.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/staticvec/inspect"
	"github.com/spf13/pflag"
)

func main() {
	format := pflag.StringP("format", "f", "console", "output format: console, dot or html")
	level := pflag.StringP("trace", "t", "Error", "trace level: Error, Info or Debug")
	pflag.Parse()
	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vecplay [flags] scenario.yaml")
		pflag.PrintDefaults()
		os.Exit(2)
	}
	setupTracing(tracing.TraceLevelFromString(*level))
	if err := run(pflag.Arg(0), *format); err != nil {
		fmt.Fprintf(os.Stderr, "vecplay: %v\n", err)
		os.Exit(1)
	}
}

func setupTracing(level tracing.TraceLevel) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		t := gologadapter.New()
		t.SetTraceLevel(level)
		return t
	}))
}

func run(path, format string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scenario, err := ParseScenario(f)
	if err != nil {
		return err
	}
	v, replayErr := Replay(scenario, os.Stdout)
	if v != nil {
		snap := inspect.Capture(v)
		switch format {
		case "dot":
			err = inspect.Dot(os.Stdout, snap)
		case "html":
			err = inspect.HTML(os.Stdout, snap)
		default:
			err = inspect.NewConsole(nil, nil).Print(snap)
		}
	}
	if replayErr != nil {
		return replayErr
	}
	return err
}

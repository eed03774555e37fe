// Command oasis is the symbolic algebra engine's CLI: a kong-based REPL
// plus subcommands for one-shot parsing, evaluation, differentiation,
// integration, root-finding, pipeline inspection, and directory watching.
// Structured logging uses slog.NewTextHandler, gated by --debug, with a
// GOMAXPROCS startup line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
)

var Version = "dev"

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

// Globals holds the flags shared by every subcommand.
type Globals struct {
	Debug    bool        `help:"Enable debug logging" short:"d"`
	Version  VersionFlag `name:"version" help:"Print version information and quit"`
	Decimals int         `help:"Decimal places for TeX numeric output" default:"5"`
}

// CLI holds the root command structure including global flags.
type CLI struct {
	Globals

	Repl      ReplCmd      `cmd:"" help:"Read-eval-print loop over infix expressions"`
	Parse     ParseCmd     `cmd:"" help:"Parse one expression and dump its tree"`
	Eval      EvalCmd      `cmd:"" help:"Parse, simplify, and print an expression"`
	Diff      DiffCmd      `cmd:"" help:"Differentiate an expression with respect to a variable"`
	Integrate IntegrateCmd `cmd:"" help:"Integrate an expression with respect to a variable"`
	Roots     RootsCmd     `cmd:"" help:"Find the rational roots of a single-variable polynomial"`
	Inspect   InspectCmd   `cmd:"" help:"Show every pipeline stage for one expression"`
	Watch     WatchCmd     `cmd:"" help:"Watch a directory of .alg files and re-evaluate on change"`
}

func main() {
	cli := CLI{}

	if len(os.Args) < 2 {
		os.Args = append(os.Args, "--help")
	}

	kCtx := kong.Parse(&cli,
		kong.Name("oasis"),
		kong.Description("Oasis symbolic algebra engine CLI"),
		kong.UsageOnError(),
		kong.Vars{
			"version": "v0.1.0",
		},
	)

	level := slog.LevelInfo
	if cli.Globals.Debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()
	log.DebugContext(ctx, "startup", slog.Int("GOMAXPROCS", runtime.GOMAXPROCS(0)))

	if err := kCtx.Run(&cli.Globals, &ctx, log); err != nil {
		kCtx.FatalIfErrorf(err)
	}
}

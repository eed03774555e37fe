package main

import (
	"context"
	"fmt"
	"log/slog"

	"oasis/parser/infix"
	"oasis/serialize"
	"oasis/simplify"
)

// EvalCmd parses and simplifies an expression, printing it via a chosen
// serializer.
type EvalCmd struct {
	Expression string `arg:"" required:"" help:"Infix expression to evaluate"`
	Format     string `help:"Output format: infix, mathml, tex, palm" default:"infix" enum:"infix,mathml,tex,palm"`
}

func (e *EvalCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	parsed, err := infix.Parse(e.Expression)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	simplified, err := simplify.Simplify(parsed)
	if err != nil {
		return fmt.Errorf("simplify error: %w", err)
	}

	switch e.Format {
	case "infix":
		fmt.Println(serialize.ToInfix(simplified))
	case "mathml":
		fmt.Println(serialize.ToMathML(simplified).String())
	case "tex":
		opts := serialize.DefaultOptions()
		opts.DecimalPlaces = globals.Decimals
		fmt.Println(serialize.ToTeX(simplified, opts))
	case "palm":
		fmt.Println(serialize.ToPALM(simplified))
	default:
		return fmt.Errorf("unknown format: %s", e.Format)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"oasis/expr"
	"oasis/parser/infix"
	"oasis/serialize"
	"oasis/zerofind"
)

// RootsCmd parses a single-variable polynomial and prints its rational
// roots, one per line.
type RootsCmd struct {
	Expression string `arg:"" required:"" help:"Polynomial, e.g. \"x^2 - 4\""`
	Variable   string `arg:"" required:"" help:"The polynomial's variable"`
}

func (c *RootsCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	e, err := infix.Parse(c.Expression)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	roots, err := zerofind.FindRationalRoots(e, expr.NewVariable(c.Variable))
	if err != nil {
		return fmt.Errorf("root-finding error: %w", err)
	}
	if len(roots) == 0 {
		fmt.Println("no rational roots found")
		return nil
	}
	for _, r := range roots {
		fmt.Println(serialize.ToInfix(r))
	}
	return nil
}

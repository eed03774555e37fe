package main

import (
	"context"
	"fmt"
	"log/slog"

	"oasis/calculus"
	"oasis/expr"
	"oasis/parser/infix"
	"oasis/serialize"
	"oasis/simplify"
)

// DiffCmd parses, differentiates with respect to a named variable, and
// simplifies the result.
type DiffCmd struct {
	Expression string `arg:"" required:"" help:"Infix expression to differentiate"`
	Variable   string `arg:"" required:"" help:"Variable name to differentiate with respect to"`
}

func (d *DiffCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	e, err := infix.Parse(d.Expression)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	simplified, err := simplify.Simplify(e)
	if err != nil {
		return fmt.Errorf("simplify error: %w", err)
	}

	derivative := calculus.Differentiate(simplified, expr.NewVariable(d.Variable))
	out, err := simplify.Simplify(derivative)
	if err != nil {
		return fmt.Errorf("simplify error: %w", err)
	}

	fmt.Println(serialize.ToInfix(out))
	return nil
}

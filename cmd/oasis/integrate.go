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

// IntegrateCmd parses, integrates with respect to a named variable, and
// simplifies the result.
type IntegrateCmd struct {
	Expression string `arg:"" required:"" help:"Infix expression to integrate"`
	Variable   string `arg:"" required:"" help:"Variable name to integrate with respect to"`
}

func (c *IntegrateCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	e, err := infix.Parse(c.Expression)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	simplified, err := simplify.Simplify(e)
	if err != nil {
		return fmt.Errorf("simplify error: %w", err)
	}

	antiderivative := calculus.Integrate(simplified, expr.NewVariable(c.Variable))
	out, err := simplify.Simplify(antiderivative)
	if err != nil {
		return fmt.Errorf("simplify error: %w", err)
	}

	fmt.Println(serialize.ToInfix(out))
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"oasis/parser/infix"
)

// ParseCmd parses one expression and dumps its tree, either as plain text
// or as JSON.
type ParseCmd struct {
	Expression string `arg:"" required:"" help:"Infix expression to parse"`
	JSON       bool   `help:"Output in JSON format" default:"false"`
}

func (p *ParseCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	e, err := infix.Parse(p.Expression)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if p.JSON {
		out, err := json.MarshalIndent(map[string]string{"tree": e.String()}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(e.String())
	return nil
}

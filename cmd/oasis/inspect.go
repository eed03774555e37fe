package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"oasis/calculus"
	"oasis/expr"
	"oasis/parser/infix"
	"oasis/serialize"
	"oasis/simplify"
)

// InspectCmd shows every pipeline stage for one expression: tokens, raw
// tree, simplified tree, differentiated, and integrated, selected with a
// --stage flag.
type InspectCmd struct {
	Expression string `arg:"" required:"" help:"Infix expression to inspect"`
	Variable   string `help:"Variable for the differentiate/integrate stages" default:"x"`
	Stage      string `help:"Pipeline stage to inspect: summary, tokens, tree, simplified, differentiated, integrated" default:"summary" enum:"summary,tokens,tree,simplified,differentiated,integrated"`
	JSON       bool   `help:"Output in JSON format" default:"false"`
}

func (c *InspectCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	switch c.Stage {
	case "summary":
		return c.inspectSummary()
	case "tokens":
		return c.inspectTokens()
	case "tree":
		return c.inspectTree()
	case "simplified":
		return c.inspectSimplified()
	case "differentiated":
		return c.inspectDifferentiated()
	case "integrated":
		return c.inspectIntegrated()
	default:
		return fmt.Errorf("unknown stage: %s", c.Stage)
	}
}

func (c *InspectCmd) parseAndSimplify() (tree, simplified expr.Expression, err error) {
	tree, err = infix.Parse(c.Expression)
	if err != nil {
		return nil, nil, err
	}
	simplified, err = simplify.Simplify(tree)
	if err != nil {
		return nil, nil, err
	}
	return tree, simplified, nil
}

func (c *InspectCmd) inspectTokens() error {
	tokens, err := infix.Tokenize(c.Expression)
	if err != nil {
		return err
	}
	if c.JSON {
		texts := make([]string, len(tokens))
		for i, t := range tokens {
			texts[i] = t.Text
		}
		out, err := json.MarshalIndent(texts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	for _, t := range tokens {
		fmt.Printf("%s %q\n", t.Type, t.Text)
	}
	return nil
}

func (c *InspectCmd) inspectTree() error {
	tree, _, err := c.parseAndSimplify()
	if err != nil {
		return err
	}
	fmt.Println(tree.String())
	return nil
}

func (c *InspectCmd) inspectSimplified() error {
	_, simplified, err := c.parseAndSimplify()
	if err != nil {
		return err
	}
	fmt.Println(serialize.ToInfix(simplified))
	return nil
}

func (c *InspectCmd) inspectDifferentiated() error {
	_, simplified, err := c.parseAndSimplify()
	if err != nil {
		return err
	}
	d, err := simplify.Simplify(calculus.Differentiate(simplified, expr.NewVariable(c.Variable)))
	if err != nil {
		return err
	}
	fmt.Println(serialize.ToInfix(d))
	return nil
}

func (c *InspectCmd) inspectIntegrated() error {
	_, simplified, err := c.parseAndSimplify()
	if err != nil {
		return err
	}
	i, err := simplify.Simplify(calculus.Integrate(simplified, expr.NewVariable(c.Variable)))
	if err != nil {
		return err
	}
	fmt.Println(serialize.ToInfix(i))
	return nil
}

func (c *InspectCmd) inspectSummary() error {
	tokens, tokErr := infix.Tokenize(c.Expression)
	tree, simplified, treeErr := c.parseAndSimplify()

	type summary struct {
		TokenCount int    `json:"tokenCount"`
		Tree       string `json:"tree,omitempty"`
		Simplified string `json:"simplified,omitempty"`
		Error      string `json:"error,omitempty"`
	}
	s := summary{}
	if tokErr == nil {
		s.TokenCount = len(tokens)
	}
	if treeErr != nil {
		s.Error = treeErr.Error()
	} else {
		s.Tree = tree.String()
		s.Simplified = serialize.ToInfix(simplified)
	}

	if c.JSON {
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("tokens: %d\n", s.TokenCount)
	if s.Error != "" {
		fmt.Printf("error: %s\n", s.Error)
		return nil
	}
	fmt.Printf("tree: %s\n", s.Tree)
	fmt.Printf("simplified: %s\n", s.Simplified)
	return nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"oasis/parser/infix"
	"oasis/serialize"
	"oasis/simplify"
)

// ReplCmd is a read-eval-print loop: each line is preprocessed, parsed,
// simplified, and printed via the infix serializer; parse errors print on
// their own line; it exits on EOF.
type ReplCmd struct{}

func (r *ReplCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		e, err := infix.Parse(line)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		simplified, err := simplify.Simplify(e)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		fmt.Println(serialize.ToInfix(simplified))
	}
}

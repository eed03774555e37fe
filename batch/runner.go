// Package batch evaluates a directory of independent ".alg" scripts (one
// infix expression per line), aggregating per-file errors and timing.
//
// Oasis expressions carry no imports, so there is no dependency graph or
// topological compile order to build. Runner keeps a simpler shape: collect
// the file set, evaluate each file independently, aggregate errors and
// elapsed time.
package batch

import (
	"fmt"
	"time"

	"oasis/expr"
	"oasis/internal/filesystem"
	"oasis/parser/infix"
	"oasis/simplify"
)

// FileError is one file's evaluation failure: which file, which line,
// which stage it failed at, and why.
type FileError struct {
	File    string
	Line    int
	Stage   string // "read", "parse" or "simplify"
	Message string
	Details error
}

func (e *FileError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s:%d [%s]: %s: %v", e.File, e.Line, e.Stage, e.Message, e.Details)
	}
	return fmt.Sprintf("%s:%d [%s]: %s", e.File, e.Line, e.Stage, e.Message)
}

// Result aggregates one directory's evaluation: every expression collected
// from every .alg file, the errors encountered per file, and the elapsed
// wall-clock time.
type Result struct {
	Evaluated map[string][]expr.Expression // file -> simplified expression per line
	Errors    []*FileError
	Elapsed   time.Duration
}

// Options configures a Runner.
type Options struct {
	RootDir   string
	Recursive bool
}

// Runner evaluates a directory of .alg scripts.
type Runner struct {
	fs filesystem.FileSystem
}

// NewRunner constructs a Runner backed by fs.
func NewRunner(fs filesystem.FileSystem) *Runner {
	return &Runner{fs: fs}
}

// Run lists every .alg file under opts.RootDir (recursively, if requested),
// parses and simplifies each line of each file independently, and returns
// the aggregated Result. A per-line failure is recorded in Result.Errors
// and does not stop evaluation of the remaining lines or files.
func (r *Runner) Run(opts Options) (*Result, error) {
	start := time.Now()

	files, err := r.fs.ListAlgFiles(opts.RootDir, opts.Recursive)
	if err != nil {
		return nil, fmt.Errorf("listing .alg files: %w", err)
	}

	result := &Result{Evaluated: make(map[string][]expr.Expression)}
	for _, file := range files {
		data, err := r.fs.ReadFile(file)
		if err != nil {
			result.Errors = append(result.Errors, &FileError{File: file, Stage: "read", Message: "could not read file", Details: err})
			continue
		}
		result.Evaluated[file] = r.evalFile(file, string(data), result)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

func (r *Runner) evalFile(file, contents string, result *Result) []expr.Expression {
	var out []expr.Expression
	line := 0
	start := 0
	for i := 0; i <= len(contents); i++ {
		if i < len(contents) && contents[i] != '\n' {
			continue
		}
		line++
		text := contents[start:i]
		start = i + 1
		if isBlank(text) {
			continue
		}
		e, err := infix.Parse(text)
		if err != nil {
			result.Errors = append(result.Errors, &FileError{File: file, Line: line, Stage: "parse", Message: "could not parse expression", Details: err})
			continue
		}
		simplified, err := simplify.Simplify(e)
		if err != nil {
			result.Errors = append(result.Errors, &FileError{File: file, Line: line, Stage: "simplify", Message: "could not simplify expression", Details: err})
			continue
		}
		out = append(out, simplified)
	}
	return out
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}

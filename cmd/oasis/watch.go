package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"oasis/batch"
	"oasis/internal/filesystem"
	"oasis/serialize"
)

// WatchCmd watches a directory of .alg files and re-runs the batch
// evaluator on changes, using a timer-based debounce over a
// filesystem.FileSystem change-event stream.
type WatchCmd struct {
	Directory string `arg:"" required:"" help:"Directory of .alg files to watch"`
	Delay     int    `help:"Debounce delay in milliseconds" default:"300"`
	Recursive bool   `help:"Watch subdirectories recursively" default:"false"`
}

func (w *WatchCmd) Run(globals *Globals, ctx *context.Context, log *slog.Logger) error {
	log.InfoContext(*ctx, "Watching directory",
		slog.String("directory", w.Directory),
		slog.Bool("recursive", w.Recursive),
		slog.Int("delay", w.Delay))

	fs := filesystem.NewFileSystem(log)

	exists, err := fs.Exists(w.Directory)
	if err != nil {
		return fmt.Errorf("error checking directory: %w", err)
	}
	if !exists {
		return fmt.Errorf("directory does not exist: %s", w.Directory)
	}
	isDir, err := fs.IsDir(w.Directory)
	if err != nil {
		return fmt.Errorf("error determining if path is a directory: %w", err)
	}
	if !isDir {
		return fmt.Errorf("path is not a directory: %s", w.Directory)
	}

	runner := batch.NewRunner(fs)

	log.InfoContext(*ctx, "Performing initial evaluation")
	if err := runEvaluation(runner, w.Directory, w.Recursive, log, *ctx); err != nil {
		return fmt.Errorf("initial evaluation failed: %w", err)
	}

	log.InfoContext(*ctx, "Starting file watcher")
	watchCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := fs.WatchFiles(watchCtx, []string{w.Directory}, w.Recursive)
	if err != nil {
		return fmt.Errorf("failed to start watching: %w", err)
	}

	timer := time.NewTimer(time.Duration(w.Delay) * time.Millisecond)
	timer.Stop()
	needsReEval := false

	fmt.Printf("Watching '%s' for changes...\n", w.Directory)

	for {
		select {
		case <-(*ctx).Done():
			log.InfoContext(*ctx, "Stopping watch due to context cancellation")
			return nil

		case event, ok := <-events:
			if !ok {
				log.InfoContext(*ctx, "Event channel closed, stopping watch")
				return nil
			}
			log.DebugContext(*ctx, "File change detected",
				slog.String("path", event.Path),
				slog.String("event", event.Type.String()),
				slog.Time("timestamp", event.Timestamp))

			if !isAlgFile(event.Path) {
				log.DebugContext(*ctx, "Ignoring non-alg file", slog.String("path", event.Path))
				continue
			}
			timer.Reset(time.Duration(w.Delay) * time.Millisecond)
			needsReEval = true

		case <-timer.C:
			if needsReEval {
				log.InfoContext(*ctx, "Re-evaluating after file changes")
				if err := runEvaluation(runner, w.Directory, w.Recursive, log, *ctx); err != nil {
					log.ErrorContext(*ctx, "Evaluation failed", slog.String("error", err.Error()))
					fmt.Printf("Evaluation error: %v\n", err)
				}
				needsReEval = false
			}
		}
	}
}

func runEvaluation(runner *batch.Runner, dir string, recursive bool, log *slog.Logger, ctx context.Context) error {
	start := time.Now()
	result, err := runner.Run(batch.Options{RootDir: dir, Recursive: recursive})
	if err != nil {
		return err
	}
	for file, exprs := range result.Evaluated {
		for _, e := range exprs {
			fmt.Printf("%s: %s\n", file, serialize.ToInfix(e))
		}
	}
	for _, fe := range result.Errors {
		fmt.Printf("%v\n", fe)
	}
	log.InfoContext(ctx, "Evaluation completed",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("errorCount", len(result.Errors)))
	return nil
}

func isAlgFile(path string) bool {
	return filepath.Ext(path) == ".alg"
}

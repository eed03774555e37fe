package batch

import (
	"context"
	"os"
	"testing"

	"oasis/internal/filesystem"
)

// fakeFileSystem implements filesystem.FileSystem backed by an in-memory
// map of path to file contents.
type fakeFileSystem struct {
	algFiles map[string]string // path -> contents
}

func newFakeFileSystem(files map[string]string) *fakeFileSystem {
	return &fakeFileSystem{algFiles: files}
}

func (f *fakeFileSystem) ReadFile(path string) ([]byte, error) {
	contents, ok := f.algFiles[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return []byte(contents), nil
}

func (f *fakeFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error { return nil }
func (f *fakeFileSystem) Exists(path string) (bool, error)                           { return true, nil }
func (f *fakeFileSystem) IsDir(path string) (bool, error)                            { return true, nil }
func (f *fakeFileSystem) ListFiles(dir string, recursive bool) ([]string, error)     { return nil, nil }

func (f *fakeFileSystem) ListAlgFiles(dir string, recursive bool) ([]string, error) {
	var out []string
	for path := range f.algFiles {
		out = append(out, path)
	}
	return out, nil
}

func (f *fakeFileSystem) MkdirAll(path string, perm os.FileMode) error { return nil }
func (f *fakeFileSystem) ResolvePath(path string) (string, error)     { return path, nil }
func (f *fakeFileSystem) RelativePath(base, target string) (string, error) {
	return target, nil
}
func (f *fakeFileSystem) AbsolutePath(path string) (string, error) { return path, nil }
func (f *fakeFileSystem) JoinPaths(elem ...string) string          { return "" }

func (f *fakeFileSystem) WatchFiles(ctx context.Context, dirs []string, recursive bool) (<-chan filesystem.FileEvent, error) {
	return nil, nil
}
func (f *fakeFileSystem) StopWatching() error { return nil }

func TestRunnerEvaluatesEachLineIndependently(t *testing.T) {
	fs := newFakeFileSystem(map[string]string{
		"a.alg": "1 + 2\nx * x\n",
	})
	r := NewRunner(fs)
	result, err := r.Run(Options{RootDir: "."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}
	if len(result.Evaluated["a.alg"]) != 2 {
		t.Fatalf("expected 2 evaluated expressions, got %d", len(result.Evaluated["a.alg"]))
	}
}

func TestRunnerContinuesAfterLineError(t *testing.T) {
	fs := newFakeFileSystem(map[string]string{
		"bad.alg": "1 +\n2 + 3\n",
	})
	r := NewRunner(fs)
	result, err := r.Run(Options{RootDir: "."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(result.Errors), result.Errors)
	}
	if len(result.Evaluated["bad.alg"]) != 1 {
		t.Fatalf("expected the second, valid line to still evaluate, got %d results", len(result.Evaluated["bad.alg"]))
	}
}

func TestRunnerSkipsBlankLines(t *testing.T) {
	fs := newFakeFileSystem(map[string]string{
		"blank.alg": "1 + 1\n\n   \n2 + 2\n",
	})
	r := NewRunner(fs)
	result, err := r.Run(Options{RootDir: "."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Evaluated["blank.alg"]) != 2 {
		t.Fatalf("expected 2 evaluated expressions, got %d", len(result.Evaluated["blank.alg"]))
	}
}

package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"github.com/pattyshack/minic/analyzer"
)

const validSource = `int main() {
  int a;
  a = 2 + 3;
  return a;
};
`

const invalidSource = `int main() {
  int a;
  b = 1;
  return a;
};
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0o644)
	be.Err(t, err, nil)
	return path
}

func TestAnalyzeSource(t *testing.T) {
	result := AnalyzeSource("valid.mc", []byte(validSource))
	be.True(t, !result.Failed())
	be.True(t, result.Program != nil)
	be.True(t, result.Report.Success)
	be.Equal(t, len(result.Report.Symbols), 1)
	be.Equal(t, result.Report.Symbols[0].Value, "5")
	be.Equal(t, len(result.CrossReferences), 1)
	xref := result.CrossReferences[0]
	be.Equal(t, xref.Name, "a")
	be.Equal(t, len(xref.Written), 1)
	be.Equal(t, len(xref.Read), 1)
	be.Equal(t, xref.Written[0], xref.Declared+1)
	be.Equal(t, xref.Read[0], xref.Declared+2)

	result = AnalyzeSource("invalid.mc", []byte(invalidSource))
	be.True(t, result.Failed())
	be.True(t, result.Program == nil)
	be.Equal(t, len(result.CrossReferences), 0)
	be.Equal(t, len(result.Errors), 1)
	be.Err(t, result.Errors[0], analyzer.ErrUndeclared)
	be.True(t, !result.Report.Success)
}

func TestAnalyzeSourceIsolated(t *testing.T) {
	first := AnalyzeSource("first.mc", []byte(validSource))
	second := AnalyzeSource("second.mc", []byte(validSource))

	// Both runs declare 'a' without tripping redeclaration.
	be.True(t, !first.Failed())
	be.True(t, !second.Failed())
	be.True(t, first.Analysis != second.Analysis)
}

func TestAnalyzeFiles(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		writeFile(t, dir, "a.mc", validSource),
		writeFile(t, dir, "b.mc", invalidSource),
		writeFile(t, dir, "c.mc", validSource),
	}

	results, err := AnalyzeFiles(context.Background(), names, 2)
	be.Err(t, err, nil)
	be.Equal(t, len(results), 3)

	for idx, result := range results {
		be.Equal(t, result.FileName, names[idx])
	}
	be.True(t, !results[0].Failed())
	be.True(t, results[1].Failed())
	be.True(t, !results[2].Failed())
}

func TestAnalyzeFilesMissing(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		writeFile(t, dir, "a.mc", validSource),
		filepath.Join(dir, "missing.mc"),
	}

	_, err := AnalyzeFiles(context.Background(), names, 0)
	be.Err(t, err, os.ErrNotExist)
}

func TestAnalyzeFilesCanceled(t *testing.T) {
	dir := t.TempDir()
	names := []string{writeFile(t, dir, "a.mc", validSource)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeFiles(ctx, names, 1)
	be.Err(t, err, context.Canceled)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "watched.mc", validSource)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results := make(chan *Result, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{path}, func(result *Result) {
			results <- result
		})
	}()

	// Keep rewriting until the watcher is registered and reports back.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var result *Result
	for result == nil {
		select {
		case result = <-results:
		case <-ticker.C:
			writeFile(t, dir, "watched.mc", invalidSource)
		case <-ctx.Done():
			t.Fatal("no change observed")
		}
	}

	be.Equal(t, result.FileName, path)
	be.True(t, result.Failed())

	cancel()
	be.Err(t, <-done, nil)
}

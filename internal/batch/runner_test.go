package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"legal-assistant-be/pkg/citation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (a *fakeAnalyzer) AnalyzeText(ctx context.Context, text string) (*citation.Analysis, error) {
	a.mu.Lock()
	a.calls = append(a.calls, text)
	a.mu.Unlock()
	if err, ok := a.fail[text]; ok {
		return nil, err
	}
	return &citation.Analysis{Summary: "summary of " + text, Hyperlinks: []citation.Hyperlink{}}, nil
}

func newTestRunner(t *testing.T, analyzer *fakeAnalyzer, burst bool) (*Runner, string, string) {
	t.Helper()
	source := t.TempDir()
	output := t.TempDir()
	runner := NewRunner(analyzer, noopLogger{}, Options{
		SourceDir: source,
		OutputDir: output,
		Delay:     0,
		Burst:     burst,
	})
	return runner, source, output
}

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunProcessesSupportedFiles(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	runner, source, output := newTestRunner(t, analyzer, false)

	writeSource(t, source, "case_a.txt", "text a")
	writeSource(t, source, "case_b.md", "text b")
	writeSource(t, source, "ignore.zip", "binary")

	result, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	got, err := os.ReadFile(filepath.Join(output, "case_a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "summary of text a", string(got))

	// The unsupported file never reached the analyzer.
	assert.Len(t, analyzer.calls, 2)
}

func TestRunSkipsExistingOutputs(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	runner, source, output := newTestRunner(t, analyzer, false)

	writeSource(t, source, "case_a.txt", "text a")
	writeSource(t, source, "case_b.txt", "text b")
	require.NoError(t, os.WriteFile(filepath.Join(output, "case_a.txt"), []byte("earlier run"), 0o644))

	result, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)

	// The existing output is never overwritten.
	got, err := os.ReadFile(filepath.Join(output, "case_a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "earlier run", string(got))
	assert.Equal(t, []string{"text b"}, analyzer.calls)
}

func TestRunFailureLeavesNoOutput(t *testing.T) {
	analyzer := &fakeAnalyzer{fail: map[string]error{
		"text a": errors.New("upstream AI service error: 429"),
	}}
	runner, source, output := newTestRunner(t, analyzer, false)

	writeSource(t, source, "case_a.txt", "text a")
	writeSource(t, source, "case_b.txt", "text b")

	result, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)

	// No partial output for the failed file; a rerun would retry it.
	_, statErr := os.Stat(filepath.Join(output, "case_a.txt"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(output, "case_b.txt"))
	assert.NoError(t, statErr)
}

func TestRunEmptySourceDirectory(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	runner, _, _ := newTestRunner(t, analyzer, false)

	result, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Result{}, result)
	assert.Empty(t, analyzer.calls)
}

func TestRunBurst(t *testing.T) {
	analyzer := &fakeAnalyzer{fail: map[string]error{
		"text b": errors.New("rate limited"),
	}}
	runner, source, output := newTestRunner(t, analyzer, true)

	writeSource(t, source, "case_a.txt", "text a")
	writeSource(t, source, "case_b.txt", "text b")
	writeSource(t, source, "case_c.txt", "text c")

	result, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)

	_, statErr := os.Stat(filepath.Join(output, "case_b.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunCancelledContext(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	runner, source, _ := newTestRunner(t, analyzer, false)

	writeSource(t, source, "case_a.txt", "text a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// Package batch runs the analysis pipeline over a directory of documents,
// writing one summary file per input.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/pkg/citation"
	"legal-assistant-be/pkg/textextract"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
)

// Analyzer is the model-call-and-parse slice of the analysis service; the
// batch path never persists history.
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) (*citation.Analysis, error)
}

type Options struct {
	SourceDir string
	OutputDir string

	// Delay is applied after each file in sequential mode to stay under the
	// upstream per-minute quota.
	Delay time.Duration

	// Burst fires all requests concurrently instead of pacing them. It is
	// kept as an option but trips upstream rate limits on any non-trivial
	// directory; the paced sequential mode is the default.
	Burst bool
}

type Result struct {
	Processed int
	Skipped   int
	Failed    int
}

type Runner struct {
	analyzer Analyzer
	log      logger.ILogger
	opts     Options
}

func NewRunner(analyzer Analyzer, log logger.ILogger, opts Options) *Runner {
	return &Runner{
		analyzer: analyzer,
		log:      log,
		opts:     opts,
	}
}

// Run processes every supported file in the source directory. A file whose
// output already exists is skipped, which makes an interrupted run safely
// restartable. Per-file failures are logged and do not abort the run.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	entries, err := os.ReadDir(r.opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !textextract.Supported(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	if len(names) == 0 {
		r.log.Warn("batch", "no supported files found", map[string]interface{}{
			"source_dir": r.opts.SourceDir,
		})
		return &Result{}, nil
	}

	fmt.Printf("Found %d files to process.\n", len(names))

	if r.opts.Burst {
		return r.runBurst(ctx, names)
	}
	return r.runSequential(ctx, names)
}

func (r *Runner) runSequential(ctx context.Context, names []string) (*Result, error) {
	result := &Result{}
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		r.processFile(ctx, name, result)
		fmt.Printf("  (%d/%d)\n", i+1, len(names))

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(r.opts.Delay):
		}
	}
	return result, nil
}

func (r *Runner) runBurst(ctx context.Context, names []string) (*Result, error) {
	color.Yellow("Burst mode: firing %d requests without pacing. Expect upstream rate limiting.", len(names))

	result := &Result{}
	results := make([]Result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			r.processFile(gctx, name, &results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	for _, fileResult := range results {
		result.Processed += fileResult.Processed
		result.Skipped += fileResult.Skipped
		result.Failed += fileResult.Failed
	}
	return result, nil
}

func (r *Runner) processFile(ctx context.Context, name string, result *Result) {
	outPath := filepath.Join(r.opts.OutputDir, name)
	if _, err := os.Stat(outPath); err == nil {
		color.Yellow("  SKIPPING %s: summary already exists.", name)
		result.Skipped++
		return
	}

	fmt.Printf("Processing %s...\n", name)

	text, err := textextract.ReadFile(filepath.Join(r.opts.SourceDir, name))
	if err != nil {
		color.Red("  ERROR reading %s: %v", name, err)
		r.log.Error("batch", "failed to read source file", map[string]interface{}{
			"file":  name,
			"error": err.Error(),
		})
		result.Failed++
		return
	}

	analysis, err := r.analyzer.AnalyzeText(ctx, text)
	if err != nil {
		color.Red("  ERROR processing %s: %v", name, err)
		r.log.Error("batch", "analysis failed", map[string]interface{}{
			"file":  name,
			"error": err.Error(),
		})
		result.Failed++
		return
	}

	if err := writeAtomic(outPath, analysis.Summary); err != nil {
		color.Red("  ERROR writing %s: %v", name, err)
		r.log.Error("batch", "failed to write summary", map[string]interface{}{
			"file":  name,
			"error": err.Error(),
		})
		result.Failed++
		return
	}

	color.Green("  SUCCESS: Saved summary for %s", name)
	result.Processed++
}

// writeAtomic writes via a temp file and rename so a failed write never
// leaves a partial output that would defeat the skip-on-resume check.
func writeAtomic(path, content string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Command summarize runs the legal analysis pipeline over a directory of
// documents and writes one summary file per input. Already-summarized files
// are skipped, so a run interrupted by rate limiting can simply be repeated.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legal-assistant-be/internal/batch"
	"legal-assistant-be/internal/config"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/service"
	"legal-assistant-be/pkg/llm/factory"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Generate summaries for a directory of legal documents",
		Long: `Generate summaries for a directory of legal documents.

Each supported file (.txt, .md, .pdf) in the source directory is sent to the
configured LLM provider and its extracted summary is written to the output
directory under the same name. Files that already have an output are skipped.

Examples:
  summarize --source full_texts --output model_summaries
  summarize --delay 2s
  summarize --provider ollama --model llama3`,
		RunE: run,
	}

	cmd.Flags().String("source", "", "source directory (default from BATCH_SOURCE_DIR)")
	cmd.Flags().String("output", "", "output directory (default from BATCH_OUTPUT_DIR)")
	cmd.Flags().Duration("delay", 0, "pause between files (default from BATCH_DELAY_SECONDS)")
	cmd.Flags().Bool("burst", false, "fire all requests concurrently; likely to hit upstream rate limits")
	cmd.Flags().String("provider", "", "LLM provider override (gemini or ollama)")
	cmd.Flags().String("model", "", "model name override")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	opts := batch.Options{
		SourceDir: cfg.Batch.SourceDir,
		OutputDir: cfg.Batch.OutputDir,
		Delay:     cfg.Batch.Delay,
	}
	if v, _ := cmd.Flags().GetString("source"); v != "" {
		opts.SourceDir = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		opts.OutputDir = v
	}
	if cmd.Flags().Changed("delay") {
		opts.Delay, _ = cmd.Flags().GetDuration("delay")
	}
	opts.Burst, _ = cmd.Flags().GetBool("burst")

	providerName := cfg.Ai.Provider
	if v, _ := cmd.Flags().GetString("provider"); v != "" {
		providerName = v
	}
	modelName := cfg.Ai.Model
	if v, _ := cmd.Flags().GetString("model"); v != "" {
		modelName = v
	}

	llmProvider, err := factory.NewProvider(providerName, modelName, cfg.Ai.GeminiAPIKey, cfg.Ai.OllamaBaseURL)
	if err != nil {
		return err
	}

	// File-only logger keeps stdout free for progress output.
	batchLogger := logger.NewFileOnlyLogger(cfg.App.LogFilePath)
	defer batchLogger.Sync()

	// No repository factory: the batch path does not persist history.
	analysisService := service.NewAnalysisService(nil, llmProvider, batchLogger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := batch.NewRunner(analysisService, batchLogger, opts)

	start := time.Now()
	result, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nProcessing complete in %.2f seconds: %d processed, %d skipped, %d failed.\n",
		time.Since(start).Seconds(), result.Processed, result.Skipped, result.Failed)
	return nil
}

package main

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/aretw0/unmangle"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	filterTag string
	jobs      int
)

// rootCmd reads an export from stdin and prints the decoded notes.
var rootCmd = &cobra.Command{
	Use:   "unmangle < notes.json",
	Short: "Print readable notes from a notes_v2 JSON export",
	Long: `Unmangle reads a notes_v2 export on standard input and prints every note
with its timestamps, title and text, undoing the exporter's escape encoding.

Any malformed input aborts the run before a single note is printed.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return unmangle.Render(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), serviceOptions()...)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func serviceOptions() []unmangle.Option {
	return []unmangle.Option{
		unmangle.WithLogger(slog.Default()),
		unmangle.WithConcurrency(jobs),
		unmangle.WithTagFilter(filterTag),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fatal(rootCmd.Name(), err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&filterTag, "tag", "", "Only keep notes with a tag matching this glob (e.g. 'work/**')")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Number of notes decoded in parallel")
}

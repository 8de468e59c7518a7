package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"strjoin/internal/concat"
)

var (
	// Global flags
	verbose  bool
	maxBytes int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "strjoin [first] [second]",
	Short: "Join two character sequences and print the result",
	Long: `strjoin concatenates two character sequences and writes the result to
stdout with no trailing newline.

With no operands it joins the literals "foo" and "bar". With one operand the
second sequence is empty. Diagnostics go to stderr; stdout carries only the
joined bytes.`,
	Args: cobra.MaximumNArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          runJoin,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func runJoin(cmd *cobra.Command, args []string) error {
	first, second := "foo", "bar"
	switch len(args) {
	case 1:
		first, second = args[0], ""
	case 2:
		first, second = args[0], args[1]
	}

	logger.Debug("joining sequences",
		zap.Int("first_len", len(first)),
		zap.Int("second_len", len(second)),
		zap.Int("max_bytes", maxBytes))

	joined, err := concat.JoinBounded(maxBytes, first, second)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), joined); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVar(&maxBytes, "max-bytes", 0, "Cap the joined result size in bytes (0 = unlimited)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amir-khosravi/ComplianceCore/internal/bench"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

var (
	benchJSON    string
	benchHTML    string
	benchWorkers int
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the built-in compliance benchmark suite",
	Long: `Bench checks the engine against a fixed suite of design/regulation pairs
with known expected verdicts and reports accuracy overall and per category.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringVar(&benchJSON, "json", "", "write benchmark results as JSON (optional)")
	benchCmd.Flags().StringVar(&benchHTML, "html", "", "write benchmark results as HTML (optional)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", model.DefaultConfig().Concurrency.BenchWorkers, "concurrent benchmark workers")
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	runner := bench.NewRunner(benchWorkers)
	outcome := runner.Run(ctx, bench.Cases())

	fmt.Print(bench.Render(outcome))

	if benchJSON != "" {
		data, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal benchmark: %w", err)
		}
		if err := os.WriteFile(benchJSON, data, 0644); err != nil {
			return fmt.Errorf("write benchmark: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", benchJSON)
		}
	}
	if benchHTML != "" {
		if err := bench.WriteHTML(outcome, benchHTML); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote HTML: %s\n", benchHTML)
		}
	}

	if outcome.Passed != outcome.Total {
		return fmt.Errorf("benchmark: %d of %d cases failed", outcome.Total-outcome.Passed, outcome.Total)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amir-khosravi/ComplianceCore/internal/cache"
	"github.com/amir-khosravi/ComplianceCore/internal/check"
	"github.com/amir-khosravi/ComplianceCore/internal/ingest"
	"github.com/amir-khosravi/ComplianceCore/internal/llm"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
	"github.com/amir-khosravi/ComplianceCore/internal/report"
	"github.com/amir-khosravi/ComplianceCore/internal/unitize"
)

var (
	outJSON     string
	outMD       string
	outUnits    string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <design-file> <regulations>",
	Short: "Check a design description against a regulatory document",
	Long: `Check segments the regulatory document into requirement units, extracts
the comparable claim from each unit and from the design text, applies the
category's comparison rule, and writes one verdict with reasoning per unit.

The design argument is a local text file. The regulations argument is a local
text or HTML file, or an http(s) URL (fetched politely: robots.txt honored,
per-host rate limit, cached).

Example:
  compliancecore check design.txt regulations.txt
  compliancecore check design.txt https://example.org/reactor-rules.html --json report.json --md report.md
  compliancecore check design.txt regulations.txt --units units.json --llm --llm-provider openai`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON report path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
	checkCmd.Flags().StringVar(&outUnits, "units", "", "save segmented requirement units to this JSON path (optional)")

	checkCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	checkCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override for URL regulations")
	checkCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read for URL regulations")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable document cache (force fresh fetch)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable optional LLM narrative summary (never affects verdicts)")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	designPath, regSource := args[0], args[1]

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
	}

	rep, err := runAnalysis(ctx, cfg, designPath, regSource, outUnits)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(rep, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(rep, outMD); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	printSummary(rep)
	return nil
}

// runAnalysis loads both documents, segments the regulations, runs the batch
// check, and assembles the report. Shared by check and chat.
func runAnalysis(ctx context.Context, cfg *model.Config, designPath, regSource, unitsPath string) (*model.Report, error) {
	designText, err := ingest.ReadDocument(designPath)
	if err != nil {
		return nil, err
	}

	var regulationsText string
	if ingest.IsURL(regSource) {
		fetcher := ingest.NewFetcher(cfg.HTTP, documentCache(cfg), cfg.Cache.TTL)
		regulationsText, err = fetcher.Fetch(ctx, regSource)
	} else {
		regulationsText, err = ingest.ReadDocument(regSource)
	}
	if err != nil {
		return nil, err
	}

	units, err := unitize.Segment(regulationsText)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Segmented %d requirement units\n", len(units))
	}

	if unitsPath != "" {
		if err := ingest.SaveUnits(unitsPath, units); err != nil {
			return nil, err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote units: %s\n", unitsPath)
		}
	}

	checker := check.NewChecker()
	results, err := checker.BatchCheck(designText, units)
	if err != nil {
		return nil, err
	}

	rep := &model.Report{
		GeneratedAt:      time.Now().UTC(),
		DesignSource:     designPath,
		RegulationSource: regSource,
		Summary:          report.Summarize(results),
		Results:          results,
	}

	if cfg.LLM.Provider != "" {
		summarizer, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summarizer unavailable: %v\n", err)
		} else if summary, err := summarizer.Summarize(ctx, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary failed: %v\n", err)
		} else {
			rep.LLM = summary
		}
	}

	return rep, nil
}

// documentCache builds the layered fetch cache. The disk layer persists
// across invocations so re-checking a design against the same regulation URL
// does not re-fetch it within the TTL. Returns nil when caching is disabled.
func documentCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No resolvable cache root: fall back to the in-process layer.
			return cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
		}
		dir = home + "/.compliancecore/cache"
	}
	return cache.NewLayeredCache(cfg.Cache.TTL, dir, cfg.Cache.TTL)
}

func printSummary(rep *model.Report) {
	fmt.Printf("Overall compliance: %.1f%% (%d requirements)\n",
		rep.Summary.CompliancePercentage, rep.Summary.TotalRequirements)
	fmt.Printf("  Compliant:     %d\n", rep.Summary.StatusCounts[model.VerdictCompliant])
	fmt.Printf("  Non-Compliant: %d\n", rep.Summary.StatusCounts[model.VerdictNonCompliant])
	fmt.Printf("  Unknown:       %d\n", rep.Summary.StatusCounts[model.VerdictUnknown])
}

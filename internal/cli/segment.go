package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amir-khosravi/ComplianceCore/internal/ingest"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
	"github.com/amir-khosravi/ComplianceCore/internal/unitize"
)

var segmentOut string

// segmentCmd represents the segment command
var segmentCmd = &cobra.Command{
	Use:   "segment <regulations>",
	Short: "Segment a regulatory document into requirement units",
	Long: `Segment splits a regulatory document into independently checkable
requirement units and saves them as an ordered JSON list, so later checks can
reload the units without re-segmenting.

The argument is a local text or HTML file, or an http(s) URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	segmentCmd.Flags().StringVar(&segmentOut, "out", "units.json", "output JSON path for requirement units")
}

func runSegment(cmd *cobra.Command, args []string) error {
	source := args[0]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := model.DefaultConfig()

	var text string
	var err error
	if ingest.IsURL(source) {
		fetcher := ingest.NewFetcher(cfg.HTTP, documentCache(cfg), cfg.Cache.TTL)
		text, err = fetcher.Fetch(ctx, source)
	} else {
		text, err = ingest.ReadDocument(source)
	}
	if err != nil {
		return err
	}

	units, err := unitize.Segment(text)
	if err != nil {
		return err
	}

	if err := ingest.SaveUnits(segmentOut, units); err != nil {
		return err
	}

	fmt.Printf("Segmented %d requirement units → %s\n", len(units), segmentOut)
	if verbose {
		for _, unit := range units {
			fmt.Printf("  %s  article=%s  category=%s\n", unit.ID, unit.ArticleID, unit.Category)
		}
	}
	return nil
}

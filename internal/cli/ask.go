package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amir-khosravi/ComplianceCore/internal/chat"
	"github.com/amir-khosravi/ComplianceCore/internal/report"
)

var askReport string

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a one-shot question against a saved report",
	Long: `Ask answers a free-text question against the result batch of a previously
generated JSON report. Values in the answer are re-derived from the stored
texts, not read back from the verdicts.

Supported topics: compliance score, insulation thickness, seismic resistance,
emergency power, containment pumps.

Example:
  compliancecore ask "what is the compliance score" --report report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVar(&askReport, "report", "report.json", "JSON report to answer against")
}

func runAsk(cmd *cobra.Command, args []string) error {
	rep, err := report.LoadJSON(askReport)
	if err != nil {
		return err
	}

	responder := chat.NewResponder()
	fmt.Println(responder.Answer(args[0], rep.Results))
	return nil
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/amir-khosravi/ComplianceCore/internal/chat"
	"github.com/amir-khosravi/ComplianceCore/internal/model"
	"github.com/amir-khosravi/ComplianceCore/internal/session"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat <design-file> <regulations>",
	Short: "Run an analysis and chat with the results interactively",
	Long: `Chat runs a full compliance analysis, then opens an interactive prompt
against the result batch. Each answer is re-derived from the stored texts.

Commands inside the prompt:
  /history   show the session's chat history
  /clear     clear the chat history
  /summary   reprint the compliance summary
  /quit      leave the session`,
	Args: cobra.ExactArgs(2),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	rep, err := runAnalysis(ctx, cfg, args[0], args[1], "")
	if err != nil {
		return err
	}

	store := session.NewStore(cfg.Session.TTL)
	sess := session.New()
	if len(rep.Results) > 0 {
		sess.DesignText = rep.Results[0].DesignText
	}
	sess.RegulationsText = args[1]
	sess.Results = rep.Results
	store.Put(sess)

	printSummary(rep)
	fmt.Println()
	fmt.Println("Ask about compliance scores, insulation thickness, seismic resistance,")
	fmt.Println("emergency power, or containment pumps. /quit to leave.")

	responder := chat.NewResponder()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// The store owns live sessions; a TTL eviction ends the conversation.
		active, ok := store.Get(sess.ID)
		if !ok {
			fmt.Println("Session expired.")
			return nil
		}

		switch line {
		case "/quit", "/exit":
			store.Delete(active.ID)
			return nil
		case "/clear":
			active.ClearHistory()
			store.Put(active)
			fmt.Println("Chat history cleared.")
			continue
		case "/summary":
			printSummary(rep)
			continue
		case "/history":
			history := active.History()
			if len(history) == 0 {
				fmt.Println("No chat history yet.")
			}
			for _, turn := range history {
				fmt.Printf("[%s] Q: %s\n", turn.Timestamp.Format("15:04:05"), turn.Question)
				fmt.Printf("          A: %s\n", turn.Response)
			}
			continue
		}

		response := responder.Answer(line, active.Results)
		active.AppendTurn(line, response)
		store.Put(active)
		fmt.Println(response)
	}

	return scanner.Err()
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley/internal/core/domain"
)

var (
	askConversationID string
	askJSON           bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question answered from your documents",
	Long: `Asks a question against the knowledge base.

The most relevant document excerpts are retrieved and handed to the
completion service; pass --conversation to keep multi-turn context.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askConversationID, "conversation", "c", "", "conversation id for multi-turn context")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	req := domain.AnswerRequest{
		Question:       args[0],
		ConversationID: askConversationID,
	}

	answer, err := answerService.Answer(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	if answer.UsedKnowledgeBase {
		cmd.Printf("\n(based on %d document excerpts)\n", answer.RelevantDocsFound)
	}
	return nil
}

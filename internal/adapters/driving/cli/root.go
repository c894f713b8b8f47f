// Package cli implements the parley command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley/internal/core/ports/driving"
	"github.com/parley-labs/parley/internal/logger"
)

// version is set at build time via -ldflags.
var version = "0.1.0"

// Injected driving services. Set by SetServices before Execute.
var (
	answerService       driving.AnswerService
	conversationService driving.ConversationService
	documentService     driving.DocumentService
	settingsService     driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Conversational document question answering",
	Long: `Parley answers questions from your uploaded documents.

Upload documents, then ask questions; answers are grounded in the most
relevant document excerpts and conversations keep short-term context.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Services bundles the driving ports the CLI needs.
type Services struct {
	Answer       driving.AnswerService
	Conversation driving.ConversationService
	Document     driving.DocumentService
	Settings     driving.SettingsService
}

// SetServices injects the driving services into the CLI commands.
func SetServices(s Services) {
	answerService = s.Answer
	conversationService = s.Conversation
	documentService = s.Document
	settingsService = s.Settings
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley/internal/adapters/driving/httpapi"
	"github.com/parley-labs/parley/internal/watcher"
)

var (
	serveAddr     string
	serveWatchDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the JSON HTTP API.

Endpoints cover asking questions, uploading and deleting documents, and
reading conversation history. Pass --watch to auto-ingest files dropped
into a directory while the server runs.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from settings)")
	serveCmd.Flags().StringVarP(&serveWatchDir, "watch", "w", "", "directory to watch for dropped documents")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if answerService == nil || documentService == nil || settingsService == nil {
		return errors.New("services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	addr := serveAddr
	if addr == "" {
		addr = settings.Server.Addr
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Answer:       answerService,
		Conversation: conversationService,
		Document:     documentService,
	},
		httpapi.WithAddr(addr),
		httpapi.WithRateLimit(settings.Server.RequestsPerSecond, settings.Server.Burst),
	)
	if err != nil {
		return err
	}

	watchDir := serveWatchDir
	if watchDir == "" {
		watchDir = settings.Server.WatchDir
	}
	if watchDir != "" {
		w := watcher.New(watchDir, documentService)
		go func() {
			if err := w.Run(cmd.Context()); err != nil {
				cmd.PrintErrf("watcher stopped: %v\n", err)
			}
		}()
	}

	return server.Run(cmd.Context())
}

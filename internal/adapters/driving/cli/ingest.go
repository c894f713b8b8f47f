package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/parley-labs/parley/internal/core/ports/driving"
)

var (
	ingestTitle       string
	ingestDescription string
	ingestUserID      string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Upload documents into the knowledge base",
	Long: `Reads one or more files, extracts their text, chunks it and indexes
the chunks for retrieval. Unparseable files are kept as placeholders so
they still show up in listings.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestTitle, "title", "t", "", "display title (single file only)")
	ingestCmd.Flags().StringVarP(&ingestDescription, "description", "d", "", "document description")
	ingestCmd.Flags().StringVarP(&ingestUserID, "user", "u", "", "uploader id")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if ingestTitle != "" && len(args) > 1 {
		return errors.New("--title can only be used with a single file")
	}

	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		doc, err := documentService.Ingest(cmd.Context(), driving.IngestInput{
			Filename:    filepath.Base(path),
			Title:       ingestTitle,
			Description: ingestDescription,
			UserID:      ingestUserID,
			Content:     content,
		})
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}

		cmd.Printf("Ingested %s as %s (%d chunks)\n", doc.Filename, doc.ID, doc.ChunkCount)
	}

	return nil
}

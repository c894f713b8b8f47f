// Command parley is a conversational document question-answering backend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/parley-labs/parley/internal/adapters/driven/config/file"
	"github.com/parley-labs/parley/internal/adapters/driven/llm/ollama"
	"github.com/parley-labs/parley/internal/adapters/driven/llm/openai"
	"github.com/parley-labs/parley/internal/adapters/driven/storage/memory"
	"github.com/parley-labs/parley/internal/adapters/driven/storage/sqlite"
	"github.com/parley-labs/parley/internal/adapters/driving/cli"
	"github.com/parley-labs/parley/internal/chunker"
	"github.com/parley-labs/parley/internal/core/domain"
	"github.com/parley-labs/parley/internal/core/ports/driven"
	"github.com/parley-labs/parley/internal/core/services"
	"github.com/parley-labs/parley/internal/logger"
	"github.com/parley-labs/parley/internal/normalisers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// Metadata survives restarts when SQLite is available; chunk and
	// conversation state is in-memory only.
	var metaStore driven.MetadataStore
	sqliteStore, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("sqlite unavailable, using in-memory metadata store: %v", err)
		metaStore = memory.NewMetadataStore()
	} else {
		defer sqliteStore.Close() //nolint:errcheck
		metaStore = sqliteStore
	}

	chunkStore := memory.NewChunkStore()
	convStore := memory.NewConversationStore()

	completion := newCompletionService(settings.LLM)
	if completion != nil {
		defer completion.Close() //nolint:errcheck
	}

	answerService := services.NewAnswerService(
		chunkStore,
		convStore,
		completion,
		services.WithTopK(settings.Retrieval.TopK),
		services.WithChatOptions(driven.ChatOptions{
			MaxTokens:   settings.LLM.MaxTokens,
			Temperature: settings.LLM.Temperature,
		}),
	)

	documentService := services.NewDocumentService(
		chunkStore,
		metaStore,
		normalisers.NewDefaultRegistry(),
		chunker.New(
			chunker.WithTargetSize(settings.Chunking.TargetSize),
			chunker.WithOverlap(settings.Chunking.Overlap),
		),
	)

	cli.SetServices(cli.Services{
		Answer:       answerService,
		Conversation: services.NewConversationService(convStore),
		Document:     documentService,
		Settings:     settingsService,
	})

	return cli.Execute(ctx)
}

// newCompletionService builds the configured provider client. A provider
// that cannot be constructed leaves answering unavailable but the rest of
// the application usable.
func newCompletionService(cfg domain.LLMSettings) driven.CompletionService {
	switch cfg.Provider {
	case domain.ProviderOpenAI:
		svc, err := openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
		if err != nil {
			logger.Warn("completion service unavailable: %v", err)
			return nil
		}
		return svc
	case domain.ProviderOllama:
		return ollama.New(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
	default:
		logger.Warn("unknown completion provider %q", cfg.Provider)
		return nil
	}
}

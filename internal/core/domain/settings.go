package domain

// Provider identifies a completion service implementation.
type Provider string

// Supported completion providers.
const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// String returns the provider name.
func (p Provider) String() string { return string(p) }

// Valid reports whether the provider is known.
func (p Provider) Valid() bool {
	return p == ProviderOpenAI || p == ProviderOllama
}

// LLMSettings configures the completion service.
type LLMSettings struct {
	Provider    Provider
	Model       string
	BaseURL     string
	APIKey      string
	MaxTokens   int
	Temperature float64
}

// RetrievalSettings configures the keyword retriever.
type RetrievalSettings struct {
	// TopK is the number of chunks handed to the prompt assembler.
	TopK int
}

// ChunkingSettings configures the paragraph chunker.
type ChunkingSettings struct {
	// TargetSize is the soft chunk size in characters.
	TargetSize int

	// Overlap is the number of trailing characters carried into the next
	// chunk to preserve cross-chunk context.
	Overlap int
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// RequestsPerSecond is the sustained per-process rate limit.
	// Zero disables rate limiting.
	RequestsPerSecond float64

	// Burst is the token-bucket burst size.
	Burst int

	// WatchDir, when set, is a directory watched for dropped files to
	// ingest automatically.
	WatchDir string
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	LLM       LLMSettings
	Retrieval RetrievalSettings
	Chunking  ChunkingSettings
	Server    ServerSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		LLM: LLMSettings{
			Provider:    ProviderOllama,
			Model:       "llama3.2",
			MaxTokens:   1024,
			Temperature: 0.7,
		},
		Retrieval: RetrievalSettings{TopK: 3},
		Chunking:  ChunkingSettings{TargetSize: 1000, Overlap: 200},
		Server: ServerSettings{
			Addr:              ":8080",
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

package registry

import (
	"strings"

	"github.com/davidbz/pronto/internal/domain"
)

// Config contains upstream base URLs. Each defaults to the vendor's public API.
type Config struct {
	OpenAIBaseURL     string `env:"PROVIDER_OPENAI_BASE_URL"     envDefault:"https://api.openai.com/v1"`
	AnthropicBaseURL  string `env:"PROVIDER_ANTHROPIC_BASE_URL"  envDefault:"https://api.anthropic.com/v1"`
	GoogleBaseURL     string `env:"PROVIDER_GOOGLE_BASE_URL"     envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	XAIBaseURL        string `env:"PROVIDER_XAI_BASE_URL"        envDefault:"https://api.x.ai/v1"`
	SeedreamBaseURL   string `env:"PROVIDER_SEEDREAM_BASE_URL"   envDefault:"https://ark.ap-southeast.bytepluses.com/api/v3"`
	HiggsfieldBaseURL string `env:"PROVIDER_HIGGSFIELD_BASE_URL" envDefault:"https://platform.higgsfield.ai/v1"`
	SunoBaseURL       string `env:"PROVIDER_SUNO_BASE_URL"       envDefault:"https://api.suno.ai/v1"`
}

// DefaultModels returns the built-in model table against the given base URLs.
func DefaultModels(cfg Config) []domain.ModelDescriptor {
	openai := trim(cfg.OpenAIBaseURL)
	anthropic := trim(cfg.AnthropicBaseURL)
	google := trim(cfg.GoogleBaseURL)
	xai := trim(cfg.XAIBaseURL)

	return []domain.ModelDescriptor{
		text("gpt-4o", "GPT-4o", domain.ProviderOpenAI, "gpt-4o", openai+"/chat/completions"),
		text("gpt-4o-mini", "GPT-4o mini", domain.ProviderOpenAI, "gpt-4o-mini", openai+"/chat/completions"),
		text("claude-3", "Claude 3 Sonnet", domain.ProviderAnthropic, "claude-3-sonnet-20240229", anthropic+"/messages"),
		text("claude-3-5-sonnet", "Claude 3.5 Sonnet", domain.ProviderAnthropic,
			"claude-3-5-sonnet-20241022", anthropic+"/messages"),
		text("gemini-pro", "Gemini Pro", domain.ProviderGoogle, "gemini-pro",
			google+"/models/gemini-pro:generateContent"),
		text("gemini-1.5-pro", "Gemini 1.5 Pro", domain.ProviderGoogle, "gemini-1.5-pro",
			google+"/models/gemini-1.5-pro:generateContent"),
		text("grok-3", "Grok 3", domain.ProviderXAI, "grok-3", xai+"/chat/completions"),
		{
			ID:            "dall-e-3",
			DisplayName:   "DALL-E 3",
			Provider:      domain.ProviderOpenAI,
			Endpoint:      openai + "/images/generations",
			WireModelName: "dall-e-3",
			Modality:      domain.ModalityImage,
		},
		{
			ID:            "seedream",
			DisplayName:   "Seedream 3.0",
			Provider:      domain.ProviderSeedream,
			Endpoint:      trim(cfg.SeedreamBaseURL) + "/images/generations",
			WireModelName: "seedream-3.0",
			Modality:      domain.ModalityImage,
		},
		{
			ID:            "higgsfield",
			DisplayName:   "Higgsfield Soul",
			Provider:      domain.ProviderHiggsfield,
			Endpoint:      trim(cfg.HiggsfieldBaseURL) + "/generate",
			WireModelName: "higgsfield-soul",
			Modality:      domain.ModalityImage,
		},
		{
			ID:            "veo-3",
			DisplayName:   "Veo 3",
			Provider:      domain.ProviderGoogle,
			Endpoint:      google + "/models/veo-3.0-generate-preview:predictLongRunning",
			WireModelName: "veo-3.0-generate-preview",
			Modality:      domain.ModalityVideo,
		},
		{
			ID:            "suno",
			DisplayName:   "Suno",
			Provider:      domain.ProviderSuno,
			Endpoint:      trim(cfg.SunoBaseURL) + "/generate",
			WireModelName: "chirp-v4",
			Modality:      domain.ModalityMusic,
		},
	}
}

func text(id, name string, provider domain.Provider, wireName, endpoint string) domain.ModelDescriptor {
	return domain.ModelDescriptor{
		ID:                id,
		DisplayName:       name,
		Provider:          provider,
		Endpoint:          endpoint,
		WireModelName:     wireName,
		Modality:          domain.ModalityText,
		SupportsStreaming: true,
	}
}

func trim(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}

package openai

// Config contains settings for the OpenAI SDK client used by key validation.
// Fields map to SDK options:
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
type Config struct {
	BaseURL string `env:"PROVIDER_OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Timeout int    `env:"OPENAI_VALIDATION_TIMEOUT" envDefault:"10"`
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults applied when the corresponding environment variable is absent.
const (
	DefaultProvider    = "gemini"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultAzureModel  = "gpt-5.2"

	// DefaultMaxContextTokens is the context-window budget used by the
	// prompt size check, in estimated tokens.
	DefaultMaxContextTokens = 1000000

	DefaultRulesDir = "coding_rules"
	DefaultOutDir   = "."
)

// Config holds all runtime configuration for one refract run. It is built
// once by Load and passed into the pipeline; nothing reads the environment
// after that point.
type Config struct {
	Provider string `mapstructure:"provider"`

	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`

	AzureEndpoint string `mapstructure:"azure_openai_endpoint"`
	AzureAPIKey   string `mapstructure:"azure_openai_key"`
	AzureModel    string `mapstructure:"azure_openai_model"`

	MaxContextTokens int    `mapstructure:"max_context_tokens"`
	RulesDir         string `mapstructure:"rules_dir"`
	OutDir           string `mapstructure:"out_dir"`
	RedactSecrets    bool   `mapstructure:"redact"`
}

// Load reads configuration from the environment, applying built-in defaults
// for any values not set.
//
// Recognized variables:
//
//	GEMINI_API_KEY (or GOOGLE_API_KEY)  Gemini credential
//	GEMINI_MODEL                        Gemini model identifier
//	AZURE_OPENAI_ENDPOINT               Azure OpenAI resource endpoint
//	AZURE_OPENAI_KEY                    Azure OpenAI credential
//	AZURE_OPENAI_MODEL                  Azure OpenAI deployment name
//	REFRACT_PROVIDER                    "gemini" or "azure"
//	REFRACT_MAX_CONTEXT_TOKENS          context-window budget in tokens
//	REFRACT_RULES_DIR                   coding rules directory
//	REFRACT_OUT_DIR                     artifact output directory
//	REFRACT_REDACT                      redact secrets from diffs
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("gemini_model", DefaultGeminiModel)
	v.SetDefault("azure_openai_model", DefaultAzureModel)
	v.SetDefault("max_context_tokens", DefaultMaxContextTokens)
	v.SetDefault("rules_dir", DefaultRulesDir)
	v.SetDefault("out_dir", DefaultOutDir)
	v.SetDefault("redact", false)

	v.SetEnvPrefix("REFRACT")
	v.AutomaticEnv()

	// Credentials keep their conventional, unprefixed names.
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	_ = v.BindEnv("gemini_model", "GEMINI_MODEL")
	_ = v.BindEnv("azure_openai_endpoint", "AZURE_OPENAI_ENDPOINT")
	_ = v.BindEnv("azure_openai_key", "AZURE_OPENAI_KEY")
	_ = v.BindEnv("azure_openai_model", "AZURE_OPENAI_MODEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment configuration: %w", err)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultClassifierEndpoint = "https://api-inference.huggingface.co/models/michellejieli/emotion_text_classifier"
	DefaultGeneratorBaseURL   = "https://api.groq.com/openai/v1"
	DefaultGeneratorModel     = "llama3-8b-8192"
	DefaultJudgeModel         = "llama3-70b-8192"
	DefaultGeminiModel        = "gemini-2.0-flash"
)

// InferenceConfig holds the hosted model endpoints the service calls.
type InferenceConfig struct {
	Classifier ClassifierConfig `toml:"classifier"`
	Generator  GeneratorConfig  `toml:"generator"`
}

// ClassifierConfig configures the emotion classification endpoint.
type ClassifierConfig struct {
	Endpoint string `toml:"endpoint"`
	Token    string `toml:"token"`
	Timeout  string `toml:"timeout"`
}

// GeneratorConfig configures the chat-completion provider. Model serves
// scenario verdicts and JudgeModel serves swipe judgments.
type GeneratorConfig struct {
	Provider   string `toml:"provider"`
	BaseURL    string `toml:"base_url"`
	Token      string `toml:"token"`
	Model      string `toml:"model"`
	JudgeModel string `toml:"judge_model"`
	Timeout    string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *ClassifierConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *GeneratorConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize finalizes both inference sections.
func (c *InferenceConfig) Finalize() error {
	if err := c.Classifier.finalize(); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}
	if err := c.Generator.finalize(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *InferenceConfig) Merge(overlay *InferenceConfig) {
	c.Classifier.merge(&overlay.Classifier)
	c.Generator.merge(&overlay.Generator)
}

func (c *ClassifierConfig) finalize() error {
	override(&c.Endpoint, "RIZZ_CLASSIFIER_ENDPOINT")
	override(&c.Token, "HUGGINGFACE_API_KEY", "RIZZ_CLASSIFIER_TOKEN")
	override(&c.Timeout, "RIZZ_CLASSIFIER_TIMEOUT")

	if c.Endpoint == "" {
		c.Endpoint = DefaultClassifierEndpoint
	}
	if c.Timeout == "" {
		c.Timeout = "5s"
	}

	if err := validateURL(c.Endpoint); err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}

func (c *ClassifierConfig) merge(overlay *ClassifierConfig) {
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *GeneratorConfig) finalize() error {
	override(&c.Provider, "RIZZ_GENERATOR_PROVIDER")
	override(&c.BaseURL, "RIZZ_GENERATOR_BASE_URL")
	override(&c.Model, "RIZZ_GENERATOR_MODEL")
	override(&c.JudgeModel, "RIZZ_GENERATOR_JUDGE_MODEL")
	override(&c.Timeout, "RIZZ_GENERATOR_TIMEOUT")

	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}

	switch c.Provider {
	case ProviderOpenAI:
		if c.BaseURL == "" {
			c.BaseURL = DefaultGeneratorBaseURL
		}
		if c.Model == "" {
			c.Model = DefaultGeneratorModel
		}
		if c.JudgeModel == "" {
			c.JudgeModel = DefaultJudgeModel
		}
		override(&c.Token, "GROQ_API_KEY", "RIZZ_GENERATOR_TOKEN")
	case ProviderGemini:
		if c.Model == "" {
			c.Model = DefaultGeminiModel
		}
		if c.JudgeModel == "" {
			c.JudgeModel = c.Model
		}
		override(&c.Token, "GEMINI_API_KEY", "RIZZ_GENERATOR_TOKEN")
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.Timeout == "" {
		c.Timeout = "10s"
	}

	if c.Provider == ProviderOpenAI {
		if err := validateURL(c.BaseURL); err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}

func (c *GeneratorConfig) merge(overlay *GeneratorConfig) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.JudgeModel != "" {
		c.JudgeModel = overlay.JudgeModel
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

// override assigns the last non-empty variable among names to target.
func override(target *string, names ...string) {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			*target = v
		}
	}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute url", raw)
	}
	return nil
}

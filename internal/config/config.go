// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	OnOffice OnOfficeConfig `yaml:"onoffice"`
	LLM      LLMConfig      `yaml:"llm"`
	Tracing  TracingConfig  `yaml:"tracing"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// OnOfficeConfig defines the listings API settings.
type OnOfficeConfig struct {
	APIKey      string        `yaml:"api_key"`
	SecretToken string        `yaml:"secret_token"`
	APIURL      string        `yaml:"api_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Probe       ProbeConfig   `yaml:"probe"`
}

// ProbeConfig defines the periodic credential check.
type ProbeConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// LLMConfig defines the generative backend settings.
type LLMConfig struct {
	Backend        string             `yaml:"backend"` // openai_compat, anthropic, gemini
	OpenAICompat   OpenAICompatConfig `yaml:"openai_compat"`
	Anthropic      AnthropicConfig    `yaml:"anthropic"`
	Gemini         GeminiConfig       `yaml:"gemini"`
	SystemPrompt   string             `yaml:"system_prompt"`   // persona template
	PromptTemplate string             `yaml:"prompt_template"` // user turn template
	MaxReplyChars  int                `yaml:"max_reply_chars"`
	Temperature    float64            `yaml:"temperature"` // 0 keeps the backend default
	Timeout        time.Duration      `yaml:"timeout"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// AnthropicConfig defines Anthropic API settings.
type AnthropicConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// GeminiConfig defines Gemini API settings.
type GeminiConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
}

// TracingConfig defines OTLP trace export.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, color
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyOnOfficeDefaults(&cfg.OnOffice)
	applyLLMDefaults(&cfg.LLM)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 90 * time.Second
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"*"}
	}
}

func applyOnOfficeDefaults(o *OnOfficeConfig) {
	if o.APIURL == "" {
		o.APIURL = "https://api.onoffice.de/api/stable/api.php"
	}
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Probe.Interval == 0 {
		o.Probe.Interval = 5 * time.Minute
	}
	if o.Probe.Timeout == 0 {
		o.Probe.Timeout = 10 * time.Second
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = "openai_compat"
	}
	if l.MaxReplyChars == 0 {
		l.MaxReplyChars = 500
	}
	if l.Timeout == 0 {
		l.Timeout = 60 * time.Second
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "estatebot"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	if cfg.OnOffice.APIKey == "" {
		errs = append(errs, fmt.Errorf("onoffice.api_key is required"))
	}
	if cfg.OnOffice.SecretToken == "" {
		errs = append(errs, fmt.Errorf("onoffice.secret_token is required"))
	}
	if cfg.OnOffice.Timeout < 0 {
		errs = append(errs, fmt.Errorf("onoffice.timeout must not be negative"))
	}
	if cfg.OnOffice.Probe.Enabled && cfg.OnOffice.Probe.Interval < time.Second {
		errs = append(errs, fmt.Errorf("onoffice.probe.interval must be at least 1s"))
	}

	switch cfg.LLM.Backend {
	case "openai_compat", "anthropic":
		// API keys may also come from OPENAI_API_KEY / ANTHROPIC_API_KEY.
	case "gemini":
		if cfg.LLM.Gemini.APIKey == "" {
			errs = append(
				errs,
				fmt.Errorf("llm.gemini.api_key is required when backend is gemini"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"llm.backend must be one of: openai_compat, anthropic, gemini (got %q)",
				cfg.LLM.Backend,
			),
		)
	}
	if cfg.LLM.MaxReplyChars < 0 {
		errs = append(errs, fmt.Errorf("llm.max_reply_chars must not be negative"))
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature must be between 0 and 2 (got %g)", cfg.LLM.Temperature))
	}

	switch cfg.Logging.Format {
	case "text", "json", "color":
	default:
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json, color (got %q)", cfg.Logging.Format),
		)
	}

	return errors.Join(errs...)
}

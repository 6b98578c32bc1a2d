package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with outbound requests
	// (e.g. "pubflow/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// DataConfig locates the publication dataset.
type DataConfig struct {
	// File is the path to the publication CSV.
	File string `json:"file" yaml:"file" mapstructure:"file"`

	// AsOfYear anchors year clamping and recency weights. Zero uses the
	// current calendar year.
	AsOfYear int `json:"as_of_year" yaml:"as_of_year" mapstructure:"as_of_year"`
}

// ServerConfig holds settings for the REST server.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// RequestTimeout bounds each request handler (default 30s).
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout" mapstructure:"request_timeout"`
}

// ChatConfig holds settings for the chat assistant's LLM backend.
type ChatConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Model is the OpenRouter model identifier (e.g. "openai/gpt-4o-mini").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// BaseURL is the chat-completions endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is the OpenRouter API key. Usually loaded from secrets.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// MaxRetries is the number of retries on rate limiting (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// SampleSize is how many matching records are quoted to the model (default 8).
	SampleSize int `json:"sample_size" yaml:"sample_size" mapstructure:"sample_size"`
}

// NetworkConfig holds defaults for the collaboration graph.
type NetworkConfig struct {
	// TopK is the length of the top-connected list (default 10).
	TopK int `json:"top_k" yaml:"top_k" mapstructure:"top_k"`

	// MaxNodes caps the graph size; zero means no cap.
	MaxNodes int `json:"max_nodes" yaml:"max_nodes" mapstructure:"max_nodes"`
}

// LogConfig selects logger level and output format.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is one of text, logfmt, json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings for the dashboard backend.
type Config struct {
	Data    DataConfig    `json:"data" yaml:"data" mapstructure:"data"`
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Chat    ChatConfig    `json:"chat" yaml:"chat" mapstructure:"chat"`
	Network NetworkConfig `json:"network" yaml:"network" mapstructure:"network"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

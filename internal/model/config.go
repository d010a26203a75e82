package model

import (
	"runtime"
	"time"
)

// Config holds the complete runtime configuration.
// Hierarchy: CLI flags > ORIGO_* environment > config file > defaults.
type Config struct {
	Corpus      CorpusConfig      `yaml:"corpus" mapstructure:"corpus"`
	Pleiades    PleiadesConfig    `yaml:"pleiades" mapstructure:"pleiades"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Match       MatchConfig       `yaml:"match" mapstructure:"match"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// CorpusConfig describes the fixed markers of the corpus format.
type CorpusConfig struct {
	IdentifierPrefix string `yaml:"identifier_prefix" mapstructure:"identifier_prefix"`
	CommentPrefix    string `yaml:"comment_prefix" mapstructure:"comment_prefix"`
}

// PleiadesConfig configures the gazetteer coordinate backfill client.
type PleiadesConfig struct {
	BaseURL           string        `yaml:"base_url" mapstructure:"base_url"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	HTTPProxy         string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy" mapstructure:"https_proxy"`
}

// CacheConfig configures the layered response cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig configures worker fan-out.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// MatchConfig configures provenance matching and duplicate resolution.
type MatchConfig struct {
	MinCandidateLength  int     `yaml:"min_candidate_length" mapstructure:"min_candidate_length"`
	DistanceThresholdKm float64 `yaml:"distance_threshold_km" mapstructure:"distance_threshold_km"`
}

// OutputConfig configures CLI output.
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LLMConfig configures the optional narrative summarizer.
// Disabled unless Provider is set.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai", "ollama", or ""
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
	Timeout   int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			IdentifierPrefix: "EDCS-",
			CommentPrefix:    "<!--",
		},
		Pleiades: PleiadesConfig{
			BaseURL:           "https://pleiades.stoa.org",
			UserAgent:         "Origo/0.1 (+https://github.com/pvollmer/origo)",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".origo-cache",
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   30 * 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Match: MatchConfig{
			MinCandidateLength:  6,
			DistanceThresholdKm: 10,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		LLM: LLMConfig{
			MaxTokens: 800,
			Timeout:   30,
		},
	}
}

package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Deploy    DeployConfig    `yaml:"deploy" mapstructure:"deploy"`
	Merge     MergeConfig     `yaml:"merge" mapstructure:"merge"`
	Normalize NormalizeConfig `yaml:"normalize" mapstructure:"normalize"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// NormalizeConfig configures the field normalizer. An empty
// CategoryTableFile keeps the built-in category table.
type NormalizeConfig struct {
	CategoryTableFile string `yaml:"category_table_file" mapstructure:"category_table_file"`
}

// AnthropicConfig holds generative-text service settings. An empty Key
// disables synthesis entirely; the pipeline then runs fallback-only.
type AnthropicConfig struct {
	Key         string  `yaml:"key" mapstructure:"key"`
	Model       string  `yaml:"model" mapstructure:"model"`
	MaxTokens   int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// DeployConfig configures workspace creation and the hosting CLI.
type DeployConfig struct {
	TemplateDir string `yaml:"template_dir" mapstructure:"template_dir"`
	ScratchDir  string `yaml:"scratch_dir" mapstructure:"scratch_dir"`
	Command     string `yaml:"command" mapstructure:"command"`
	Token       string `yaml:"token" mapstructure:"token"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// MergeConfig holds merge-policy flags.
type MergeConfig struct {
	AllowCandidateAreas bool `yaml:"allow_candidate_areas" mapstructure:"allow_candidate_areas"`
}

// StoreConfig configures the deploy-history database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// BatchConfig configures the offline content pipeline.
type BatchConfig struct {
	OutputDir     string `yaml:"output_dir" mapstructure:"output_dir"`
	MaxConcurrent int    `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SITEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Secret-bearing keys get an empty default too: AutomaticEnv
	// only resolves keys viper already knows about.
	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 4096)
	v.SetDefault("anthropic.temperature", 0.7)
	v.SetDefault("anthropic.rate_per_sec", 0.5)
	v.SetDefault("deploy.template_dir", "./site-template")
	v.SetDefault("deploy.scratch_dir", "/tmp/sitegen")
	v.SetDefault("deploy.command", "vercel")
	v.SetDefault("deploy.token", "")
	v.SetDefault("deploy.timeout_secs", 300)
	v.SetDefault("merge.allow_candidate_areas", false)
	v.SetDefault("normalize.category_table_file", "")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "sitegen.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("batch.output_dir", "./generated")
	v.SetDefault("batch.max_concurrent", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

// Package config loads and validates the TOML configuration that drives
// a scan: where to look for route sources, how to normalize paths into
// screen ids, and where artifacts go.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Version      int        `toml:"version"`
	ScanPaths    []string   `toml:"scan_paths"`
	PagesDirs    []string   `toml:"pages_dirs"` // file-based routing roots
	MetadataFile string     `toml:"metadata_file"`
	Exclude      Exclude    `toml:"exclude"`
	Normalizer   Normalizer `toml:"normalizer"`
	OpenAPI      OpenAPI    `toml:"openapi"`
	Analysis     Analysis   `toml:"analysis"`
	DB           Database   `toml:"db"`
	Watch        Watch      `toml:"watch"`
	Output       Output     `toml:"output"`
	Metrics      Metrics    `toml:"metrics"`
	Tracing      Tracing    `toml:"tracing"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"` // glob patterns
}

type Normalizer struct {
	SmartParameterNaming      bool              `toml:"smart_parameter_naming"`
	ParameterMapping          map[string]string `toml:"parameter_mapping"`
	UnmappedParameterStrategy string            `toml:"unmapped_parameter_strategy"`
}

type OpenAPI struct {
	Source string `toml:"source"` // file path or http(s) URL
}

type Analysis struct {
	MaxDepth int `toml:"max_depth"`
}

type Database struct {
	Enabled    bool   `toml:"enabled"`
	Path       string `toml:"path"`
	ProjectKey string `toml:"project_key"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

type Output struct {
	Catalog string `toml:"catalog"`
	Mermaid string `toml:"mermaid"`
	DOT     string `toml:"dot"`
}

type Metrics struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"`
}

type Tracing struct {
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := validateVersion(&cfg); err != nil {
		return nil, err
	}
	if err := validateNormalizer(&cfg); err != nil {
		return nil, err
	}
	if err := validateAnalysis(&cfg); err != nil {
		return nil, err
	}
	if err := validateDatabase(&cfg); err != nil {
		return nil, err
	}
	if err := validateMetrics(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if len(cfg.ScanPaths) == 0 {
		cfg.ScanPaths = []string{"."}
	}
	if len(cfg.Exclude.Dirs) == 0 {
		cfg.Exclude.Dirs = []string{"node_modules", "dist", "build", ".git"}
	}
	if strings.TrimSpace(cfg.Normalizer.UnmappedParameterStrategy) == "" {
		cfg.Normalizer.UnmappedParameterStrategy = "preserve"
	}
	if cfg.Analysis.MaxDepth == 0 {
		cfg.Analysis.MaxDepth = 10
	}
	if strings.TrimSpace(cfg.DB.Path) == "" {
		cfg.DB.Path = "screenmap-history.db"
	}
	if strings.TrimSpace(cfg.DB.ProjectKey) == "" {
		cfg.DB.ProjectKey = "default"
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if strings.TrimSpace(cfg.Output.Catalog) == "" {
		cfg.Output.Catalog = "screens.json"
	}
	if strings.TrimSpace(cfg.Metrics.Address) == "" {
		cfg.Metrics.Address = "127.0.0.1:9090"
	}
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateNormalizer(cfg *Config) error {
	strategy := strings.ToLower(strings.TrimSpace(cfg.Normalizer.UnmappedParameterStrategy))
	switch strategy {
	case "preserve", "detail", "warn":
	default:
		return fmt.Errorf("normalizer.unmapped_parameter_strategy must be one of: preserve, detail, warn")
	}

	for param, mapped := range cfg.Normalizer.ParameterMapping {
		if strings.TrimSpace(param) == "" {
			return fmt.Errorf("normalizer.parameter_mapping key must not be empty")
		}
		if strings.HasPrefix(param, ":") || strings.HasPrefix(param, "$") {
			return fmt.Errorf("normalizer.parameter_mapping key %q must not carry a sigil", param)
		}
		if strings.TrimSpace(mapped) == "" {
			return fmt.Errorf("normalizer.parameter_mapping.%s must not be empty", param)
		}
	}
	return nil
}

func validateAnalysis(cfg *Config) error {
	if cfg.Analysis.MaxDepth < 1 {
		return fmt.Errorf("analysis.max_depth must be >= 1, got %d", cfg.Analysis.MaxDepth)
	}
	return nil
}

func validateDatabase(cfg *Config) error {
	if cfg.DB.Enabled && strings.TrimSpace(cfg.DB.Path) == "" {
		return fmt.Errorf("db.path must not be empty when db.enabled=true")
	}
	return nil
}

func validateMetrics(cfg *Config) error {
	if cfg.Metrics.Enabled && strings.TrimSpace(cfg.Metrics.Address) == "" {
		return fmt.Errorf("metrics.address must not be empty when metrics.enabled=true")
	}
	return nil
}

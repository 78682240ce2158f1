package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AI providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// History backends
const (
	BackendFile     = "file"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
)

// ErrMissingAPIKey is the fail-fast configuration error: the service refuses
// to start without AI credentials instead of failing at call time.
var ErrMissingAPIKey = errors.New("config: AI api key is not set")

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	AI struct {
		Provider       string `yaml:"provider"` // gemini | openai
		APIKey         string `yaml:"apiKey"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"ai"`

	History struct {
		Backend string `yaml:"backend"` // file | mysql | postgres
		Path    string `yaml:"path"`    // file backend
	} `yaml:"history"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Scanner struct {
		VideoDevice      string  `yaml:"videoDevice"`
		ScanSeconds      float64 `yaml:"scanSeconds"`
		IndicatorSeconds float64 `yaml:"indicatorSeconds"`
		CodeDelaySeconds float64 `yaml:"codeDelaySeconds"`
	} `yaml:"scanner"`

	Minio struct {
		Enabled    bool   `yaml:"enabled"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Load baca file config.yaml, apply env overrides, and validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.AI.Provider == "" {
		c.AI.Provider = ProviderGemini
	}
	if c.AI.TimeoutSeconds == 0 {
		c.AI.TimeoutSeconds = 30
	}
	if c.History.Backend == "" {
		c.History.Backend = BackendFile
	}
	if c.History.Path == "" {
		c.History.Path = "data/authentiscan.json"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && c.AI.Provider == ProviderGemini {
		c.AI.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.AI.Provider == ProviderOpenAI {
		c.AI.APIKey = v
	}
}

// Validate fails fast on configuration the service cannot run with.
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("config: unknown ai provider %q", c.AI.Provider)
	}
	if c.AI.APIKey == "" {
		return ErrMissingAPIKey
	}
	switch c.History.Backend {
	case BackendFile, BackendMySQL, BackendPostgres:
	default:
		return fmt.Errorf("config: unknown history backend %q", c.History.Backend)
	}
	return nil
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

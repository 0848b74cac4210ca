package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:postpilot.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	AutoPilot AutoPilotConfig `yaml:"autopilot" json:"autopilot" jsonschema:"description=Recurring generation configuration"`

	Dispatch DispatchConfig `yaml:"dispatch" json:"dispatch" jsonschema:"description=Publish dispatcher configuration"`

	Generator GeneratorConfig `yaml:"generator" json:"generator" jsonschema:"description=LLM content generator configuration"`

	Profile ProfileConfig `yaml:"profile" json:"profile" jsonschema:"description=Business profile used for generation context"`
}

// AutoPilotConfig holds the recurring generation defaults applied at startup
type AutoPilotConfig struct {
	IntervalHours    int            `yaml:"interval_hours" json:"interval_hours" jsonschema:"default=24,description=Hours between automatic generation runs"`
	Cadence          string         `yaml:"cadence" json:"cadence" jsonschema:"default=weekly,description=Posting cadence the quotas apply to (daily/weekly/monthly)"`
	AutoApprove      bool           `yaml:"auto_approve" json:"auto_approve" jsonschema:"default=false,description=Skip the review queue and schedule generated items directly"`
	PostingFrequency map[string]int `yaml:"posting_frequency" json:"posting_frequency" jsonschema:"description=Per-platform item quota per generation run"`
	TickInterval     time.Duration  `yaml:"tick_interval" json:"tick_interval" jsonschema:"default=1s,description=Generation countdown tick granularity"`
	RetryDelay       time.Duration  `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=3s,description=Delay before the single automatic generation retry"`
}

// DispatchConfig holds publish dispatcher settings
type DispatchConfig struct {
	PollInterval time.Duration     `yaml:"poll_interval" json:"poll_interval" jsonschema:"default=60s,description=Cadence of the publish poll cycle"`
	MaxRetries   int               `yaml:"max_retries" json:"max_retries" jsonschema:"default=3,description=Delivery attempts before an item is demoted to draft"`
	MaxWorkers   int               `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Items delivered concurrently within one poll cycle"`
	Timeout      time.Duration     `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-delivery HTTP timeout"`
	Webhooks     map[string]string `yaml:"webhooks" json:"webhooks" jsonschema:"description=Per-platform delivery webhook URLs"`
}

// GeneratorConfig holds LLM configuration for content generation
type GeneratorConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	AvoidRecent  int           `yaml:"avoid_recent" json:"avoid_recent" jsonschema:"default=20,description=Number of recent memory entries passed as avoid hints"`
}

// ProfileConfig describes the business the content is generated for
type ProfileConfig struct {
	Name        string `yaml:"name" json:"name" jsonschema:"description=Business name"`
	Description string `yaml:"description" json:"description" jsonschema:"description=What the business does"`
	Tone        string `yaml:"tone" json:"tone" jsonschema:"default=professional,description=Writing tone for generated content"`
	Audience    string `yaml:"audience" json:"audience" jsonschema:"description=Target audience description"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:postpilot.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for autopilot
	if cfg.AutoPilot.IntervalHours == 0 {
		cfg.AutoPilot.IntervalHours = 24
	}
	if cfg.AutoPilot.Cadence == "" {
		cfg.AutoPilot.Cadence = "weekly"
	}
	if cfg.AutoPilot.TickInterval == 0 {
		cfg.AutoPilot.TickInterval = time.Second
	}
	if cfg.AutoPilot.RetryDelay == 0 {
		cfg.AutoPilot.RetryDelay = 3 * time.Second
	}

	// set defaults for dispatch
	if cfg.Dispatch.PollInterval == 0 {
		cfg.Dispatch.PollInterval = time.Minute
	}
	if cfg.Dispatch.MaxRetries == 0 {
		cfg.Dispatch.MaxRetries = 3
	}
	if cfg.Dispatch.MaxWorkers == 0 {
		cfg.Dispatch.MaxWorkers = 4
	}
	if cfg.Dispatch.Timeout == 0 {
		cfg.Dispatch.Timeout = 30 * time.Second
	}

	// set defaults for generator
	if cfg.Generator.Temperature == 0 {
		cfg.Generator.Temperature = 0.7
	}
	if cfg.Generator.MaxTokens == 0 {
		cfg.Generator.MaxTokens = 2000
	}
	if cfg.Generator.Timeout == 0 {
		cfg.Generator.Timeout = 60 * time.Second
	}
	if cfg.Generator.AvoidRecent == 0 {
		cfg.Generator.AvoidRecent = 20
	}

	// set defaults for profile
	if cfg.Profile.Tone == "" {
		cfg.Profile.Tone = "professional"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate generator config
	if cfg.Generator.Endpoint == "" {
		return fmt.Errorf("generator.endpoint is required")
	}
	if cfg.Generator.Model == "" {
		return fmt.Errorf("generator.model is required")
	}
	if cfg.Generator.Temperature < 0 || cfg.Generator.Temperature > 2 {
		return fmt.Errorf("generator.temperature must be between 0 and 2")
	}

	// validate autopilot config
	if cfg.AutoPilot.IntervalHours < 1 {
		return fmt.Errorf("autopilot.interval_hours must be positive")
	}
	switch cfg.AutoPilot.Cadence {
	case "daily", "weekly", "monthly":
	default:
		return fmt.Errorf("autopilot.cadence must be daily, weekly or monthly")
	}
	for platform, quota := range cfg.AutoPilot.PostingFrequency {
		if quota < 0 {
			return fmt.Errorf("autopilot.posting_frequency.%s must be non-negative", platform)
		}
	}

	// validate dispatch config
	if cfg.Dispatch.PollInterval < time.Second {
		return fmt.Errorf("dispatch.poll_interval must be at least 1 second")
	}
	if cfg.Dispatch.MaxRetries < 1 {
		return fmt.Errorf("dispatch.max_retries must be at least 1")
	}
	if cfg.Dispatch.MaxWorkers < 1 {
		return fmt.Errorf("dispatch.max_workers must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetGeneratorConfig returns LLM generator configuration
func (c *Config) GetGeneratorConfig() GeneratorConfig {
	return c.Generator
}

// GetProfileConfig returns the business profile configuration
func (c *Config) GetProfileConfig() ProfileConfig {
	return c.Profile
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/se8/internal/providers/se8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	AppName   = "se8"
	EnvPrefix = "SE8_"

	DefaultBaseURL = se8.DefaultBaseURL
)

type Config struct {
	BaseURL        string        `yaml:"base_url" env:"BASE_URL"`
	Output         string        `yaml:"output" env:"OUTPUT"`
	ImageWorkers   int           `yaml:"image_workers" env:"IMAGE_WORKERS"`
	ChapterWorkers int           `yaml:"chapter_workers" env:"CHAPTER_WORKERS"`
	KeepFolders    bool          `yaml:"keep_folders" env:"KEEP_FOLDERS"`
	Debug          bool          `yaml:"debug" env:"DEBUG"`
	Timeout        time.Duration `yaml:"timeout" env:"TIMEOUT"`

	DefaultRange string `yaml:"default_range" env:"DEFAULT_RANGE"`
	DefaultList  string `yaml:"default_list" env:"DEFAULT_LIST"`

	Cookie           string `yaml:"cookie" env:"COOKIE"`
	CookieFile       string `yaml:"cookie_file" env:"COOKIE_FILE"`
	UserAgent        string `yaml:"user_agent" env:"USER_AGENT"`
	CloudflareBypass bool   `yaml:"cloudflare_bypass" env:"CLOUDFLARE_BYPASS"`

	SkipBroken bool `yaml:"skip_broken" env:"SKIP_BROKEN"`
}

// Options carries CLI flag values; zero values mean "not set".
type Options struct {
	IgnoreConfig     bool
	Debug            bool
	BaseURL          string
	Output           string
	ImageWorkers     int
	ChapterWorkers   int
	KeepFolders      bool
	Timeout          time.Duration
	DefaultRange     string
	DefaultList      string
	Cookie           string
	CookieFile       string
	UserAgent        string
	CloudflareBypass bool
	SkipBroken       bool
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Output:         ".",
		ImageWorkers:   5,
		ChapterWorkers: 2,
		Timeout:        30 * time.Second,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadMerged resolves the effective config: active YAML profile (or
// defaults), then SE8_* environment variables, then CLI options. The
// second return value describes where the base values came from.
func LoadMerged(opts Options) (*Config, string, error) {
	cfg, used, err := loadBase(opts.IgnoreConfig)
	if err != nil {
		return nil, "", err
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, "", fmt.Errorf("environment: %w", err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, used, nil
}

func loadBase(ignore bool) (*Config, string, error) {
	if ignore {
		return DefaultConfig(), "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) {
		return DefaultConfig(), "(default config in memory)\nRun `se8 config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.ImageWorkers != 0 {
		c.ImageWorkers = o.ImageWorkers
	}
	if o.ChapterWorkers != 0 {
		c.ChapterWorkers = o.ChapterWorkers
	}
	if o.KeepFolders {
		c.KeepFolders = true
	}
	if o.Debug {
		c.Debug = true
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.DefaultRange != "" {
		c.DefaultRange = o.DefaultRange
	}
	if o.DefaultList != "" {
		c.DefaultList = o.DefaultList
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.SkipBroken {
		c.SkipBroken = true
	}
}

func normalizeDefaults(c *Config) {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Output == "" {
		c.Output = "."
	}
	if c.ImageWorkers <= 0 {
		c.ImageWorkers = 5
	}
	if c.ChapterWorkers <= 0 {
		c.ChapterWorkers = 2
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, " -base_url: %s\n", c.BaseURL)
	if c.Output != "" {
		fmt.Fprintf(w, " -output: %s\n", c.Output)
	}
	fmt.Fprintf(w, " -image_workers: %d\n", c.ImageWorkers)
	fmt.Fprintf(w, " -chapter_workers: %d\n", c.ChapterWorkers)
	fmt.Fprintf(w, " -timeout: %s\n", c.Timeout)
	if c.KeepFolders {
		fmt.Fprintf(w, " -keep_folders: %t\n", c.KeepFolders)
	}
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	if c.DefaultRange != "" {
		fmt.Fprintf(w, " -range: %s\n", c.DefaultRange)
	}
	if c.DefaultList != "" {
		fmt.Fprintf(w, " -list: %s\n", c.DefaultList)
	}
	if c.CookieFile != "" {
		fmt.Fprintf(w, " -cookie_file: %s\n", c.CookieFile)
	}
	if c.CloudflareBypass {
		fmt.Fprintf(w, " -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.SkipBroken {
		fmt.Fprintf(w, " -skip_broken: %t\n", c.SkipBroken)
	}
}

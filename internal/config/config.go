package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration parses "10m" / "24h" style values from config.yaml.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Cache   CacheConfig   `yaml:"cache"`
	Shorts  ShortsConfig  `yaml:"shorts"`
	Paths   PathsConfig   `yaml:"paths"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	BodyLimit int    `yaml:"body_limit"`
}

type YouTubeConfig struct {
	DefaultRegion string   `yaml:"default_region"`
	MaxResults    int64    `yaml:"max_results"`
	FetchTimeout  Duration `yaml:"fetch_timeout"`
}

type GeminiConfig struct {
	Model       string   `yaml:"model"`
	ImageModel  string   `yaml:"image_model"`
	CallTimeout Duration `yaml:"call_timeout"`
}

type CacheConfig struct {
	TrendTTL    Duration `yaml:"trend_ttl"`
	CategoryTTL Duration `yaml:"category_ttl"`
	PromptTTL   Duration `yaml:"prompt_ttl"`
}

type ShortsConfig struct {
	FrameIntervalSec int      `yaml:"frame_interval_sec"`
	MinScenes        int      `yaml:"min_scenes"`
	MaxScenes        int      `yaml:"max_scenes"`
	ImageCallDelay   Duration `yaml:"image_call_delay"`
	DefaultScriptSec int      `yaml:"default_script_sec"`
}

type PathsConfig struct {
	Static string `yaml:"static"`
}

// Load reads config.yaml, applies defaults and environment overrides.
// The .env file is optional — CI and production inject real env vars.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[config] %s not found, using defaults", path)
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "3000",
			BodyLimit: 10 * 1024 * 1024,
		},
		YouTube: YouTubeConfig{
			DefaultRegion: "KR",
			MaxResults:    50,
			FetchTimeout:  Duration(15 * time.Second),
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.5-flash",
			ImageModel:  "gemini-2.5-flash-image",
			CallTimeout: Duration(60 * time.Second),
		},
		Cache: CacheConfig{
			TrendTTL:    Duration(10 * time.Minute),
			CategoryTTL: Duration(24 * time.Hour),
			PromptTTL:   Duration(7 * 24 * time.Hour),
		},
		Shorts: ShortsConfig{
			FrameIntervalSec: 3,
			MinScenes:        4,
			MaxScenes:        6,
			ImageCallDelay:   Duration(1 * time.Second),
			DefaultScriptSec: 15,
		},
		Paths: PathsConfig{
			Static: "./public",
		},
	}
}

// applyEnv maps environment overrides onto the config. Secrets stay in env
// only — API keys are read at call sites, never serialized into config.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("GEMINI_IMAGE_MODEL"); v != "" {
		c.Gemini.ImageModel = v
	}
}

// YouTubeAPIKey returns the YouTube Data API key from the environment.
func YouTubeAPIKey() string {
	return os.Getenv("YOUTUBE_API_KEY")
}

// GeminiAPIKey returns the Gemini API key from the environment.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TelegramToken string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	DatabaseURL   string `yaml:"database_url" env:"DATABASE_URL"`
	//Source thread
	Subreddit   string `yaml:"subreddit"`
	SearchQuery string `yaml:"search_query"`
	//Paths
	CachePath string `yaml:"cache_path"`
	//Scheduling; empty means run once and exit
	CronSpec string `yaml:"cron_spec"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	//Set default values if not set
	if cfg.Subreddit == "" {
		cfg.Subreddit = "developersIndia"
	}

	if cfg.SearchQuery == "" {
		cfg.SearchQuery = "Who's looking for work"
	}

	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	//Validate required fields
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return cfg
}

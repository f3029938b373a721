package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads config.yaml (plus an environment overlay) and env overrides
// into a validated Config.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // overlay is optional

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.App.Environment = env

	// The Radar key only ever comes from the environment, never a checked-in file.
	if key := os.Getenv("RADAR_SECRET_KEY"); key != "" {
		cfg.Radar.SecretKey = key
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	for _, p := range []string{".env", "../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "roomshare-server")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_seconds", 5)
	v.SetDefault("server.rate_limit_per_min", 120)

	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "roomshare")
	v.SetDefault("database.postgres.user", "roomshare")
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("database.postgres.max_connections", 20)
	v.SetDefault("database.postgres.max_idle", 5)

	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("database.redis.db", 0)

	v.SetDefault("search.max_lat_span", 10.0)
	v.SetDefault("search.max_lng_span", 10.0)
	v.SetDefault("search.min_latitude", -85.0)
	v.SetDefault("search.max_latitude", 85.0)
	v.SetDefault("search.price_expand_percent", 10)
	v.SetDefault("search.move_in_shift_days", 14)
	v.SetDefault("search.debounce_millis", 300)
	v.SetDefault("search.max_visible_chips", 5)
	v.SetDefault("search.max_query_length", 100)
	v.SetDefault("search.max_listings_per_user", 10)
	v.SetDefault("search.map_result_cap", 200)
	v.SetDefault("search.default_page_size", 20)
	v.SetDefault("search.max_page_size", 50)
	v.SetDefault("search.near_match_threshold", 3)

	v.SetDefault("radar.base_url", "https://api.radar.io/v1")

	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.sender", "no-reply@roomshare.example")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func validate(cfg *Config) error {
	if cfg.Search.MaxLatSpan <= 0 || cfg.Search.MaxLngSpan <= 0 {
		return fmt.Errorf("search max spans must be positive")
	}
	if cfg.Search.DefaultPageSize <= 0 || cfg.Search.MaxPageSize < cfg.Search.DefaultPageSize {
		return fmt.Errorf("page size bounds are inconsistent")
	}
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// DefaultSearch returns the pinned search constants without reading any files.
// Tests construct their fixtures from this.
func DefaultSearch() SearchConfig {
	return SearchConfig{
		MaxLatSpan:         10.0,
		MaxLngSpan:         10.0,
		MinLatitude:        -85.0,
		MaxLatitude:        85.0,
		PriceExpandPercent: 10,
		MoveInShiftDays:    14,
		DebounceMillis:     300,
		MaxVisibleChips:    5,
		MaxQueryLength:     100,
		MaxListingsPerUser: 10,
		MapResultCap:       200,
		DefaultPageSize:    20,
		MaxPageSize:        50,
		NearMatchThreshold: 3,
	}
}

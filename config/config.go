package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Search   SearchConfig   `mapstructure:"search"`
	Radar    RadarConfig    `mapstructure:"radar"`
	Email    EmailConfig    `mapstructure:"email"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ShutdownSeconds int    `mapstructure:"shutdown_seconds"`
	RateLimitPerMin int    `mapstructure:"rate_limit_per_min"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SearchConfig pins the numeric thresholds the search core depends on.
// The exact values are configuration, held steady by the test suite.
type SearchConfig struct {
	MaxLatSpan         float64 `mapstructure:"max_lat_span"`
	MaxLngSpan         float64 `mapstructure:"max_lng_span"`
	MinLatitude        float64 `mapstructure:"min_latitude"`
	MaxLatitude        float64 `mapstructure:"max_latitude"`
	PriceExpandPercent int     `mapstructure:"price_expand_percent"`
	MoveInShiftDays    int     `mapstructure:"move_in_shift_days"`
	DebounceMillis     int     `mapstructure:"debounce_millis"`
	MaxVisibleChips    int     `mapstructure:"max_visible_chips"`
	MaxQueryLength     int     `mapstructure:"max_query_length"`
	MaxListingsPerUser int     `mapstructure:"max_listings_per_user"`
	MapResultCap       int     `mapstructure:"map_result_cap"`
	DefaultPageSize    int     `mapstructure:"default_page_size"`
	MaxPageSize        int     `mapstructure:"max_page_size"`
	NearMatchThreshold int     `mapstructure:"near_match_threshold"`
}

type RadarConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	BaseURL   string `mapstructure:"base_url"`
}

type EmailConfig struct {
	Region string `mapstructure:"region"`
	Sender string `mapstructure:"sender"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Resources file paths (dev seed fixtures).
const RESOURCES_PATH_PREFIX = "resources"
const SEED_LISTINGS_RESOURCE = "seed_listings.json"

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

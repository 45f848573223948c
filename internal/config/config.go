package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Security SecurityConfig `json:"security"`
	Journal  JournalConfig  `json:"journal"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// DatabaseConfig represents Mongo connection configuration
type DatabaseConfig struct {
	URI            string        `json:"uri"`
	DBName         string        `json:"db_name"`
	ConnectTimeout time.Duration `json:"connect_timeout"`
}

// SecurityConfig holds credential settings
type SecurityConfig struct {
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

// JournalConfig is the masthead metadata served on the title endpoint
type JournalConfig struct {
	Title     string `json:"title"`
	Editor    string `json:"editor"`
	Publisher string `json:"publisher"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			URI:            "mongodb://localhost:27017",
			DBName:         "journalDB",
			ConnectTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			TokenTTL: 24 * time.Hour,
		},
		Journal: JournalConfig{
			Title:     "The Journal of API Technology",
			Editor:    "ejc369@nyu.edu",
			Publisher: "Palgave",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		config.Database.URI = uri
	}
	if name := os.Getenv("MONGO_DBNAME"); name != "" {
		config.Database.DBName = name
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Security.JWTSecret = secret
	}
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

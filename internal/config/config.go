package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"DB_HOST,required"`
	Port     int    `yaml:"port" env:"DB_PORT,required"`
	User     string `yaml:"user" env:"DB_USER,required"`
	Password string `yaml:"password" env:"DB_PASSWORD,required"`
	DBName   string `yaml:"dbname" env:"DB_NAME,required"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE,required"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port" env:"PORT"`
	} `yaml:"server"`

	Auth struct {
		InviteCode string `yaml:"invite_code" env:"INVITE_CODE,required"`
		AdminCode  string `yaml:"admin_code" env:"ADMIN_CODE,required"`
	} `yaml:"auth"`

	Database DatabaseConfig `yaml:"database"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Replace environment variables in the YAML content
	content := string(data)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		placeholder := "${" + pair[0] + "}"
		content = strings.ReplaceAll(content, placeholder, pair[1])
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// Numeric values supplied through environment variables arrive as strings,
	// so the placeholder substitution above cannot cover them
	if portStr := os.Getenv("DB_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DB_PORT value: %w", err)
		}
		cfg.Database.Port = port
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %w", err)
		}
		cfg.Server.Port = port
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}

	return &cfg, nil
}

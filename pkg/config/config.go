package config

import (
	"os"
	"strconv"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// RedisConfig holds cache settings. The service runs without Redis when
// Addr is empty.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// OllamaConfig points at the local generative model endpoint.
type OllamaConfig struct {
	URL            string `yaml:"url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// SpeechConfig points at the external speech-to-text endpoint.
type SpeechConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// AuthConfig enables HTTP basic auth on the API when PasswordHash is set
// to a bcrypt hash.
type AuthConfig struct {
	User         string `yaml:"user"`
	PasswordHash string `yaml:"password_hash"`
}

func OverrideServerFromEnv(cfg *ServerConfig) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Port = port
	}
}

func OverrideDBFromEnv(cfg *DBConfig) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Name = name
	}
}

func OverrideRedisFromEnv(cfg *RedisConfig) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Password = password
	}
}

func OverrideOllamaFromEnv(cfg *OllamaConfig) {
	if url := os.Getenv("OLLAMA_URL"); url != "" {
		cfg.URL = url
	}
	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		cfg.Model = model
	}
}

func OverrideSpeechFromEnv(cfg *SpeechConfig) {
	if url := os.Getenv("SPEECH_URL"); url != "" {
		cfg.URL = url
	}
}

func OverrideAuthFromEnv(cfg *AuthConfig) {
	if user := os.Getenv("AUTH_USER"); user != "" {
		cfg.User = user
	}
	if hash := os.Getenv("AUTH_PASSWORD_HASH"); hash != "" {
		cfg.PasswordHash = hash
	}
}

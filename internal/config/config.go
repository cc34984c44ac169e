package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"daykeeper/pkg/config"
)

type Config struct {
	Server config.ServerConfig `yaml:"server"`
	DB     config.DBConfig     `yaml:"db"`
	Redis  config.RedisConfig  `yaml:"redis"`
	Ollama config.OllamaConfig `yaml:"ollama"`
	Speech config.SpeechConfig `yaml:"speech"`
	Auth   config.AuthConfig   `yaml:"auth"`
}

// Load reads the layered yaml configuration and applies environment
// variable overrides on top.
func Load() *Config {
	env := config.GetConfigEnv()
	configDir := config.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := config.LoadConfig(env, configDir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var cfg Config
	cfgData, err := yaml.Marshal(cfgMap)
	if err != nil {
		log.Fatalf("failed to marshal config: %v", err)
	}
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideOllamaFromEnv(&cfg.Ollama)
	config.OverrideSpeechFromEnv(&cfg.Speech)
	config.OverrideAuthFromEnv(&cfg.Auth)

	return &cfg
}

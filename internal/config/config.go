package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

// AuthConfig seeds the mock identity provider. Exactly one credential pair
// is accepted; everything else is rejected.
type AuthConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	UserID   string `yaml:"user_id"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Latency  string `yaml:"latency"`
}

type CasbinConfig struct {
	ModelPath  string `yaml:"model_path"`
	PolicyPath string `yaml:"policy_path"`
}

type AuditConfig struct {
	Capacity int `yaml:"capacity"`
}

type ConfigFile struct {
	App     AppConfig     `yaml:"app"`
	Redis   RedisConfig   `yaml:"redis"`
	Session SessionConfig `yaml:"session"`
	Auth    AuthConfig    `yaml:"auth"`
	Casbin  CasbinConfig  `yaml:"casbin"`
	Audit   AuditConfig   `yaml:"audit"`
}

type Config struct {
	Port             string
	GinMode          string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SessionTTL       time.Duration
	AuthEmail        string
	AuthPassword     string
	AuthUserID       string
	AuthName         string
	AuthRole         string
	AuthLatency      time.Duration
	CasbinModelPath  string
	CasbinPolicyPath string
	AuditCapacity    int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("BACKOFFICE_CONFIG", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	latency, err := time.ParseDuration(configFile.Auth.Latency)
	if err != nil {
		return nil, fmt.Errorf("invalid auth latency: %w", err)
	}

	capacity := configFile.Audit.Capacity
	if capacity <= 0 {
		capacity = 256
	}

	return &Config{
		Port:             fmt.Sprintf("%d", configFile.App.Port),
		GinMode:          configFile.App.GinMode,
		RedisAddr:        env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:    env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:          configFile.Redis.DB,
		SessionTTL:       sessionTTL,
		AuthEmail:        configFile.Auth.Email,
		AuthPassword:     configFile.Auth.Password,
		AuthUserID:       configFile.Auth.UserID,
		AuthName:         configFile.Auth.Name,
		AuthRole:         configFile.Auth.Role,
		AuthLatency:      latency,
		CasbinModelPath:  configFile.Casbin.ModelPath,
		CasbinPolicyPath: configFile.Casbin.PolicyPath,
		AuditCapacity:    capacity,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

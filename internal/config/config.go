package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreDriverMongo = "mongo"
	StoreDriverRedis = "redis"
)

// Model providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Store   StoreConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Model   ModelConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type CORSConfig struct {
	AllowOrigins string
}

type StoreConfig struct {
	Driver         string
	ConnectTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type ModelConfig struct {
	Provider string
	APIKey   string
	Name     string
	BaseURL  string
}

type LoggerConfig struct {
	Level string
	Env   string
	File  string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.body_limit", 10*1024*1024)
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("store.driver", StoreDriverMongo)
	v.SetDefault("store.connect_timeout", "15s")
	v.SetDefault("mongodb.database", "pathpilot")
	v.SetDefault("redis.db", 0)
	v.SetDefault("model.provider", ProviderGemini)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "development")
}

// modelDefaults holds the model name and endpoint used when a provider is
// selected without overriding them.
var modelDefaults = map[string]struct{ name, baseURL string }{
	ProviderGemini: {"gemini-1.5-flash", "https://generativelanguage.googleapis.com/v1beta"},
	ProviderOpenAI: {"gpt-4o-mini", ""},
	ProviderOllama: {"llama3", "http://localhost:11434"},
}

// envAliases binds the conventional variable names a deployment already
// exports. Nested keys are also reachable as SECTION_KEY via AutomaticEnv.
var envAliases = map[string][]string{
	"server.port":           {"PORT", "SERVER_PORT"},
	"cors.allow_origins":    {"CORS_ALLOW_ORIGINS"},
	"store.driver":          {"STORE_DRIVER"},
	"mongodb.uri":           {"MONGODB_URI", "MONGO_URI"},
	"mongodb.database":      {"DB_NAME", "MONGODB_DATABASE"},
	"redis.address":         {"REDIS_ADDRESS"},
	"redis.password":        {"REDIS_PASSWORD"},
	"redis.db":              {"REDIS_DB"},
	"model.provider":        {"MODEL_PROVIDER"},
	"model.api_key":         {"GEMINI_API_KEY", "MODEL_API_KEY"},
	"model.name":            {"MODEL_NAME"},
	"model.base_url":        {"MODEL_BASE_URL"},
	"log.level":             {"LOG_LEVEL"},
	"log.env":               {"ENV"},
	"log.file":              {"LOG_FILE"},
	"store.connect_timeout": {"STORE_CONNECT_TIMEOUT"},
}

// LoadConfig reads .env (if present), an optional config.yaml and the
// environment. A missing credential or connection string is not an error
// here; the components that need them fail per operation instead.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("cors.allow_origins"),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(v.GetString("store.driver")),
			ConnectTimeout: v.GetDuration("store.connect_timeout"),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("mongodb.uri"),
			Database: v.GetString("mongodb.database"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Model: ModelConfig{
			Provider: strings.ToLower(v.GetString("model.provider")),
			APIKey:   v.GetString("model.api_key"),
			Name:     v.GetString("model.name"),
			BaseURL:  strings.TrimRight(v.GetString("model.base_url"), "/"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("log.level"),
			Env:   v.GetString("log.env"),
			File:  v.GetString("log.file"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	def := modelDefaults[cfg.Model.Provider]
	if cfg.Model.Name == "" {
		cfg.Model.Name = def.name
	}
	if cfg.Model.BaseURL == "" {
		cfg.Model.BaseURL = def.baseURL
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverMongo, StoreDriverRedis:
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	switch c.Model.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("unsupported model provider %q", c.Model.Provider)
	}
	if c.Store.ConnectTimeout <= 0 {
		return fmt.Errorf("store.connect_timeout must be positive")
	}
	return nil
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

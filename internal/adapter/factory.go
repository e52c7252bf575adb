// Package adapter selects the concrete document store and model client for a
// configuration.
package adapter

import (
	"pathpilot/internal/adapter/gemini"
	"pathpilot/internal/adapter/langchain"
	"pathpilot/internal/adapter/mongostore"
	"pathpilot/internal/adapter/redisstore"
	"pathpilot/internal/config"
	"pathpilot/internal/domain"
	"pathpilot/internal/logger"

	"go.uber.org/zap"
)

// NewDocumentStore returns the configured backend. Neither backend connects
// here; the first operation does.
func NewDocumentStore(cfg *config.Config) domain.DocumentStore {
	l := logger.Get()
	switch cfg.Store.Driver {
	case config.StoreDriverRedis:
		if cfg.Redis.Address == "" {
			l.Warn("REDIS_ADDRESS is not set; store-backed endpoints will fail")
		}
		l.Info("Using Redis document store", zap.String("address", cfg.Redis.Address))
		return redisstore.New(cfg.Redis, cfg.Store.ConnectTimeout)
	default:
		if cfg.MongoDB.URI == "" {
			l.Warn("MONGODB_URI is not set; store-backed endpoints will fail")
		}
		l.Info("Using MongoDB document store", zap.String("database", cfg.MongoDB.Database))
		return mongostore.New(cfg.MongoDB, cfg.Store.ConnectTimeout)
	}
}

// NewModelClient returns the client for cfg.Model.Provider. A missing
// credential is logged, not fatal.
func NewModelClient(cfg *config.Config) domain.ModelClient {
	if cfg.Model.APIKey == "" && cfg.Model.Provider != config.ProviderOllama {
		logger.Get().Warn("Model API key is not set; model-backed endpoints will serve errors or fallbacks",
			zap.String("provider", cfg.Model.Provider))
	}
	switch cfg.Model.Provider {
	case config.ProviderOpenAI, config.ProviderOllama:
		return langchain.NewClient(cfg.Model)
	default:
		return gemini.NewClient(cfg.Model.BaseURL, cfg.Model.Name, cfg.Model.APIKey, nil)
	}
}

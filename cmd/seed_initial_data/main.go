// Command seed_initial_data loads careers into the configured document store,
// either from a JSON file or from the built-in trending catalog.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"pathpilot/internal/adapter"
	"pathpilot/internal/config"
	"pathpilot/internal/domain"
	"pathpilot/internal/fallback"
	"pathpilot/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cmd := &cobra.Command{
		Use:          "seed_initial_data",
		Short:        "Insert careers into the configured document store",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSeed,
	}
	cmd.Flags().StringP("file", "f", "", "JSON array of careers to insert (default: built-in trending catalog)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	seedFile, _ := cmd.Flags().GetString("file")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	docs, err := loadSeedDocuments(seedFile)
	if err != nil {
		log.Error("Failed to load seed data", zap.String("path", seedFile), zap.Error(err))
		return err
	}
	log.Info("Starting initial data seeding process...", zap.Int("careers", len(docs)))

	store := adapter.NewDocumentStore(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Warn("Failed to close document store", zap.Error(err))
		}
	}()

	inserted, err := seedCareers(ctx, store, docs)
	if err != nil {
		log.Error("Seeding stopped", zap.Int("inserted", inserted), zap.Error(err))
		return err
	}
	log.Info("Initial data seeding process completed.", zap.Int("inserted", inserted))
	return nil
}

// loadSeedDocuments reads path, or converts the trending catalog when path
// is empty.
func loadSeedDocuments(path string) ([]domain.Document, error) {
	var raw []byte
	if path == "" {
		data, err := json.Marshal(fallback.TrendingCareers())
		if err != nil {
			return nil, err
		}
		raw = data
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = data
	}

	var docs []domain.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("seed data must be a JSON array of objects: %w", err)
	}
	return docs, nil
}

// seedCareers inserts docs in order and stops at the first failure.
func seedCareers(ctx context.Context, store domain.DocumentStore, docs []domain.Document) (int, error) {
	log := logger.Get()
	for i, doc := range docs {
		id, err := store.Insert(ctx, domain.CollectionCareers, doc)
		if err != nil {
			return i, fmt.Errorf("failed to insert career %v: %w", doc["title"], err)
		}
		log.Info("Inserted career", zap.String("id", id), zap.Any("title", doc["title"]))
	}
	return len(docs), nil
}

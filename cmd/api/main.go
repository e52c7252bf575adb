// @title PathPilot API
// @version 1.0
// @description Career guidance gateway: model-backed career, quiz and recommendation endpoints with static fallbacks, plus simple record storage.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:3000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pathpilot/cmd/api/docs"
	"pathpilot/internal/adapter"
	"pathpilot/internal/config"
	"pathpilot/internal/fallback"
	"pathpilot/internal/handler"
	"pathpilot/internal/logger"
	"pathpilot/internal/router"
	"pathpilot/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "api",
		Short:        "PathPilot career guidance gateway",
		SilenceUsage: true,
	}

	serve := serveCmd()
	root.AddCommand(serve, fallbackCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	cmd.Flags().IntP("port", "p", 0, "HTTP listen port (overrides PORT)")
	return cmd
}

func fallbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "fallback <trending|quiz|recommendations|category|enrich>",
		Short:     "Print the canned envelope served when the model quota is exhausted",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"trending", "quiz", "recommendations", "category", "enrich"},
		RunE:      runFallback,
	}
	f := cmd.Flags()
	f.IntP("num-questions", "n", -1, "Quiz question count (-1 = default)")
	f.Int("limit", -1, "Recommendation or category count (-1 = all)")
	f.String("topic", "", "Quiz topic")
	f.String("category", "", "Career category")
	f.StringSlice("titles", nil, "Career titles to enrich")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	store := adapter.NewDocumentStore(cfg)
	model := adapter.NewModelClient(cfg)
	appLogger.Info("Model client initialized",
		zap.String("provider", model.Provider()),
		zap.String("model", cfg.Model.Name))

	advisorService := service.NewAdvisorService(model, fallback.NewSelector())
	recordService := service.NewRecordService(store)

	app := router.New(cfg, router.Handlers{
		Career: handler.NewCareerHandler(advisorService),
		Record: handler.NewRecordHandler(recordService),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(cfg.Address()); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := store.Close(ctx); err != nil {
		appLogger.Warn("Failed to close document store", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
	return nil
}

func runFallback(cmd *cobra.Command, args []string) error {
	kind, err := fallback.ParseKind(args[0])
	if err != nil {
		return err
	}

	f := cmd.Flags()
	var params fallback.Params
	if n, _ := f.GetInt("num-questions"); n >= 0 {
		params.NumQuestions = &n
	}
	if n, _ := f.GetInt("limit"); n >= 0 {
		params.Limit = &n
		params.Count = &n
	}
	params.Topic, _ = f.GetString("topic")
	params.Category, _ = f.GetString("category")
	params.Titles, _ = f.GetStringSlice("titles")

	env, err := fallback.NewSelector().Select(kind, params)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Mrasyid-dev/pos-system/pkg/server"
	"github.com/Mrasyid-dev/pos-system/pkg/services/config"
	"github.com/Mrasyid-dev/pos-system/pkg/services/export"
	"github.com/Mrasyid-dev/pos-system/pkg/services/report"
	"github.com/Mrasyid-dev/pos-system/pkg/store/postgres"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the POS reporting web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (POS_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := postgres.NewDB(ctx, postgres.Settings{DSN: cfg.Database.DSN()})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	store, err := postgres.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	reports := report.NewService(store, cfg.Company.Name)

	logger.Info().Str("company", cfg.Company.Name).Msg("configuration loaded")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
		Dependencies: server.Dependencies{
			Reports:  reports,
			Exporter: export.NewExporter(),
		},
	})

	return api.Start()
}

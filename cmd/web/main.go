package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/race-tools/startlist/pkg/server"
	"github.com/race-tools/startlist/pkg/services/competition"
	"github.com/race-tools/startlist/pkg/services/config"
	"github.com/race-tools/startlist/pkg/services/registration"
	registrationstore "github.com/race-tools/startlist/pkg/store/registration"
	"github.com/race-tools/startlist/pkg/store/sqlite"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the registration report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "startlist.yaml",
		"Path to the server configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.DBPath})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	store, err := registrationstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create registration store: %w", err)
	}

	logger.Info().Str("db_path", cfg.DBPath).Msg("database opened")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Competitions:  competition.NewExplorer(store),
			Registrations: registration.NewReporter(store),
		},
	})

	return api.Start()
}

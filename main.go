package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fitness-app/api"
	"fitness-app/confs"
	"fitness-app/db"
	"fitness-app/server"
	"fitness-app/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagBaseURL string
	flagLogFile string
	flagListen  string
	flagMetrics string
	flagDBPath  string
	flagSeed    bool
)

var rootCmd = &cobra.Command{
	Use:   "fitness-app",
	Short: "Terminal client for the fitness tracking backend",
	Long: `fitness-app is a terminal client for the fitness tracking backend.
It signs in, shows the latest weight and recent activities, browses and
generates recipes, and records daily biometrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := confs.LoadConfig()
		if err != nil {
			return err
		}
		if flagBaseURL != "" {
			cfg.APIBaseURL = flagBaseURL
		}
		if flagLogFile != "" {
			cfg.LogFile = flagLogFile
		}

		// The TUI owns the terminal, so logs go to a file.
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		logger := newLogger(logFile, cfg.LogLevel)

		client := api.NewClient(cfg.APIBaseURL, logger)
		program := tea.NewProgram(ui.NewApp(client, logger), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run program: %w", err)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the development backend",
	Long: `serve runs a local backend with the same HTTP surface the client
expects, backed by sqlite. Useful for development and demos without the
production deployment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := confs.LoadConfig()
		if err != nil {
			return err
		}
		if flagListen != "" {
			cfg.ListenAddr = flagListen
		}
		if flagMetrics != "" {
			cfg.MetricsAddr = flagMetrics
		}
		if flagDBPath != "" {
			cfg.DBPath = flagDBPath
		}

		logger := newLogger(zerolog.ConsoleWriter{Out: os.Stderr}, cfg.LogLevel)

		database, err := db.Connect(cfg.DBPath)
		if err != nil {
			return err
		}
		if flagSeed {
			if err := db.Seed(database); err != nil {
				return err
			}
		}

		return server.NewServer(database, logger, cfg.ListenAddr, cfg.MetricsAddr).Start()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitness-app %s\n", version)
	},
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func init() {
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "backend origin (overrides API_BASE_URL)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "log file path (overrides LOG_FILE)")

	serveCmd.Flags().StringVar(&flagListen, "listen", "", "API listen address (overrides LISTEN_ADDR)")
	serveCmd.Flags().StringVar(&flagMetrics, "metrics", "", "metrics listen address (overrides METRICS_ADDR)")
	serveCmd.Flags().StringVar(&flagDBPath, "db", "", "sqlite database path (overrides DB_PATH)")
	serveCmd.Flags().BoolVar(&flagSeed, "seed", true, "seed demo data on first run")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

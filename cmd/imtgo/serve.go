package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rgehrsitz/imtgo/internal/api"
	"github.com/rgehrsitz/imtgo/internal/calculation"
	"github.com/rgehrsitz/imtgo/internal/config"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator as a JSON HTTP API",
	Long: `Serve the calculator over HTTP.

Settings come from IMTGO_ADDR, IMTGO_RULES_FILE and IMTGO_CORS_ORIGINS,
optionally read from a .env file. Flags override the environment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		cfg, err := config.ServerFromEnv(envFile)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		if rules, _ := cmd.Flags().GetString("rules"); rules == "" && cfg.RulesFile != "" {
			if err := cmd.Flags().Set("rules", cfg.RulesFile); err != nil {
				return err
			}
		}

		level := slog.LevelInfo
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}
		calc.SetLogger(slogAdapter{logger})

		router := api.NewRouter(calc, api.RouterConfig{Logger: logger, CORSOrigins: cfg.CORSOrigins})
		srv := api.NewServer(cfg.Addr, router)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.Run(ctx, srv, logger)
	},
}

// slogAdapter routes calculator logging into the server's structured log
type slogAdapter struct {
	logger *slog.Logger
}

var _ calculation.Logger = slogAdapter{}

func (a slogAdapter) Debugf(format string, args ...any) { a.logger.Debug(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Infof(format string, args ...any)  { a.logger.Info(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Warnf(format string, args ...any)  { a.logger.Warn(fmt.Sprintf(format, args...)) }
func (a slogAdapter) Errorf(format string, args ...any) { a.logger.Error(fmt.Sprintf(format, args...)) }

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from IMTGO_ADDR or :8080)")
	serveCmd.Flags().String("env-file", ".env", "Environment file to load if present")

	rootCmd.AddCommand(serveCmd)
}

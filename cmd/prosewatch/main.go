// prosewatch — rewrite drift monitor
//
// Usage:
//
//	prosewatch diff <original> <rewritten>   # diff two text files
//	prosewatch check                         # run one monitoring round
//	prosewatch serve                         # run the REST API
//	prosewatch version                       # show version
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/prosewatch/prosewatch/internal/api"
	"github.com/prosewatch/prosewatch/internal/revision"
	"github.com/prosewatch/prosewatch/internal/user"
	"github.com/prosewatch/prosewatch/pkg/config"
	"github.com/prosewatch/prosewatch/pkg/notify"
	"github.com/prosewatch/prosewatch/pkg/scraper"
	"github.com/prosewatch/prosewatch/pkg/storage"
	"github.com/prosewatch/prosewatch/pkg/textdiff"
)

var version = "dev"

type appConfig struct {
	Database storage.Config `yaml:"database"`
	API      struct {
		Addr      string `yaml:"addr" env:"PROSEWATCH_API_ADDR"`
		JWTSecret string `yaml:"jwt_secret" env:"PROSEWATCH_JWT_SECRET"`
	} `yaml:"api"`
	Webhook       notify.WebhookConfig `yaml:"webhook"`
	CheckInterval time.Duration        `yaml:"check_interval" env:"PROSEWATCH_CHECK_INTERVAL"`
}

func loadConfig(path string) (appConfig, error) {
	cfg := appConfig{}
	cfg.Database.DSN = "prosewatch.db"
	cfg.API.Addr = ":8080"
	cfg.CheckInterval = 6 * time.Hour
	if err := config.LoadOrDefault(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "prosewatch",
		Short: "Phrase-level rewrite drift monitor",
		Long:  "prosewatch tracks documents and reports which word phrases were added or removed between versions.",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "prosewatch.yaml", "path to config file")

	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(checkCmd(&configPath))
	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func diffCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "diff <original> <rewritten>",
		Short: "Diff two text files at phrase level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read original: %w", err)
			}
			rewritten, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read rewritten: %w", err)
			}

			result := textdiff.Diff(string(original), string(rewritten))

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			fmt.Println(result.Summary())
			for _, phrase := range result.Removals {
				fmt.Printf("- %s\n", phrase)
			}
			for _, phrase := range result.Additions {
				fmt.Printf("+ %s\n", phrase)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "output JSON")
	return cmd
}

func checkCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run one monitoring round over all tracked documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			pipeline, db, err := buildPipeline(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return pipeline.RunCheck(cmd.Context())
		},
	}
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and periodic checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.API.JWTSecret == "" {
				return fmt.Errorf("api.jwt_secret is required for serve (or PROSEWATCH_JWT_SECRET)")
			}

			pipeline, db, err := buildPipeline(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			uStore := user.NewStore(db)
			if err := uStore.Migrate(context.Background()); err != nil {
				return err
			}

			server := api.NewServer(uStore, revision.NewStore(db), cfg.API.JWTSecret)
			httpServer := &http.Server{
				Addr:    cfg.API.Addr,
				Handler: server.Routes(),
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				ticker := time.NewTicker(cfg.CheckInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if err := pipeline.RunCheck(ctx); err != nil {
							slog.Error("scheduled check failed", "error", err)
						}
					}
				}
			}()

			go func() {
				slog.Info("API listening", "addr", cfg.API.Addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("server failed", "error", err)
					stop()
				}
			}()

			<-ctx.Done()
			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("prosewatch %s\n", version)
		},
	}
}

func buildPipeline(cfg appConfig) (*revision.Pipeline, *storage.DB, error) {
	db, err := storage.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	store := revision.NewStore(db)
	if err := store.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, nil, err
	}

	dispatcher := notify.NewDispatcher()
	dispatcher.Register(notify.NewStdoutNotifier())
	if cfg.Webhook.URL != "" {
		dispatcher.Register(notify.NewWebhookNotifier(cfg.Webhook))
	}

	return revision.NewPipeline(store, scraper.NewHTTPFetcher(), dispatcher), db, nil
}

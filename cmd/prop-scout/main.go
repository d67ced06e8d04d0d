// Package main provides the entry point for the prop scanning CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/prop-scout/internal/config"
	"github.com/yourusername/prop-scout/internal/engine"
	"github.com/yourusername/prop-scout/internal/logger"
	"github.com/yourusername/prop-scout/internal/metrics"
	"github.com/yourusername/prop-scout/internal/models"
	"github.com/yourusername/prop-scout/internal/oddsapi"
	"github.com/yourusername/prop-scout/internal/scanner"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	sport      string
	marketKeys []string
	watch      bool
	appLogger  *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVar(&sport, "sport", "", "Override the configured sport key")
	rootCmd.Flags().StringSliceVar(&marketKeys, "markets", nil, "Override the configured market keys")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Keep scanning on the configured interval")
}

var rootCmd = &cobra.Command{
	Use:   "prop-scout",
	Short: "Scan prop lines for soft/sharp pricing edges",
	Long:  `Fetches prop quotes across bookmakers, matches soft lines against the sharp consensus, and ranks the exploitable edges.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if sport != "" {
			loaded.Scanner.Sport = sport
		}
		if len(marketKeys) > 0 {
			loaded.Scanner.Markets = marketKeys
		}
		if err := config.Validate(loaded); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	appLogger.WithFields(logrus.Fields{
		"version": Version,
		"commit":  GitCommit,
		"sport":   cfg.Scanner.Sport,
	}).Info("Starting prop scout")

	if cfg.Metrics.Enabled {
		startMetricsServer()
	}

	client := oddsapi.NewClient(cfg.OddsAPI, appLogger)
	eng := engine.New(&cfg.Books, &cfg.Engine)
	scan := scanner.New(client, eng, cfg.Scanner, appLogger)

	if watch {
		return runWatch(scan)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	props, err := scan.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	printProps(props)
	return nil
}

func runWatch(scan *scanner.Scanner) error {
	interval := cfg.Scanner.WatchInterval
	if interval <= 0 {
		interval = 300
	}

	watcher := scanner.NewWatcher(scan, appLogger, printProps)
	if err := watcher.Schedule(interval); err != nil {
		return err
	}
	watcher.Start()
	defer watcher.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	appLogger.Info("Shutdown signal received")
	return nil
}

func startMetricsServer() {
	addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Error("Metrics server stopped")
		}
	}()
	appLogger.WithField("addr", addr).Info("Metrics server listening")
}

// printProps renders the ranked recommendation table
func printProps(props []models.AnalyzedProp) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tMARKET\tEDGE\tSCORE\tSOFT\tFAIR\tWIN%\tGUIDANCE")
	for i := range props {
		p := &props[i]
		if !p.HasEdge() {
			continue
		}
		fair := "-"
		if p.FairValue != nil {
			fair = fmt.Sprintf("%.1f", *p.FairValue)
		}
		winProb := "-"
		if p.WinProbability != nil {
			winProb = fmt.Sprintf("%.1f", *p.WinProbability)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.1f\t%s\t%s\t%s\n",
			p.PlayerName, p.Market, p.EdgeType, p.EdgeScore, p.SoftQuote.Point, fair, winProb, p.Guidance)
	}
	w.Flush()
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MJDEV50/fetch-coding-challenge/internal/config"
	"github.com/MJDEV50/fetch-coding-challenge/internal/httpapi"
	"github.com/MJDEV50/fetch-coding-challenge/internal/logging"
	"github.com/MJDEV50/fetch-coding-challenge/internal/probe"
	"github.com/MJDEV50/fetch-coding-challenge/internal/report"
	"github.com/MJDEV50/fetch-coding-challenge/internal/scheduler"
	"github.com/MJDEV50/fetch-coding-challenge/internal/stats"
)

const apiShutdownTimeout = 5 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start monitoring the configured endpoints",
	Long: `Start probing every endpoint in the configuration file and print
availability reports until interrupted (Ctrl+C or SIGTERM).`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("config", "c", "", "path to the endpoints YAML file (required)")
	_ = runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	endpoints, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load endpoints: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger, err := logging.NewLogger(settings.LogDir, settings.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("monitor_start",
		zap.Int("endpoints", len(endpoints)),
		zap.Duration("probe_interval", scheduler.DefaultInterval),
		zap.Duration("report_interval", report.DefaultInterval),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg := stats.NewAggregator()
	sched := scheduler.New(logger, probe.NewHTTPChecker(), agg, scheduler.DefaultInterval)

	sinks := report.Multi{report.NewZapSink(logger)}
	if settings.ConsoleReport {
		sinks = append(sinks, report.NewConsoleSink(os.Stdout))
	}
	rep := report.New(logger, agg, sinks, report.DefaultInterval)

	var srv *http.Server
	if settings.APIAddr != "" {
		api := httpapi.NewServer(logger, agg, endpoints)
		srv = &http.Server{Addr: settings.APIAddr, Handler: api.Router()}
		go func() {
			logger.Info("api_listen", zap.String("addr", settings.APIAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("api_serve_error", zap.Error(err))
			}
		}()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		rep.Run(ctx)
	}()

	sched.Run(ctx, endpoints)
	wg.Wait()

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), apiShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("api_shutdown_error", zap.Error(err))
		}
	}

	logger.Info("monitor_stopped")
	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/procwatch/procwatch/internal/config"
	"github.com/procwatch/procwatch/internal/history"
	"github.com/procwatch/procwatch/internal/history/factory"
	"github.com/procwatch/procwatch/internal/logger"
	"github.com/procwatch/procwatch/internal/manager"
	"github.com/procwatch/procwatch/internal/metrics"
	"github.com/procwatch/procwatch/internal/process"
	"github.com/procwatch/procwatch/internal/server"
)

func runServe(flags *ServeFlags) error {
	fc, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(fc.Log)
	slog.SetDefault(log)

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return err
	}

	var sink history.Sink
	if fc.History.Enabled {
		sink, err = factory.NewSinkFromDSN(fc.History.DSN)
		if err != nil {
			// Supervision works without history; warn and continue.
			log.Warn("history sink unavailable", "dsn", fc.History.DSN, "error", err)
		} else {
			defer func() { _ = sink.Close() }()
		}
	}

	mgr, err := manager.New(fc.Specs(), manager.Options{
		Logger:            log,
		Sink:              sink,
		StopWait:          fc.Timing.StopWait,
		SettleDelay:       fc.Timing.SettleDelay,
		ReconcileInterval: fc.Timing.ReconcileInterval,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go mgr.Run(ctx)

	listen := fc.Server.Listen
	if flags.Listen != "" {
		listen = flags.Listen
	}
	configPath := flags.ConfigPath
	router := server.NewRouter(mgr, fc.Server.BasePath, func() ([]process.Spec, error) {
		return config.LoadSpecs(configPath)
	})
	srv := server.NewServer(listen, fc.Server.TLSCert, fc.Server.TLSKey, router)
	log.Info("control surface listening", "addr", listen)

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

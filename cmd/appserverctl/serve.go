package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appserver-io/confnode/api"
	"github.com/appserver-io/confnode/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveOpt = struct {
	Address string
	Watch   bool
}{}

var serveCmd = cobra.Command{
	Use:   "serve",
	Short: "Serve the configuration over http, optionally reloading on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewStore()
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		w := config.NewWatcher(control.loader(), store, config.NewMetrics(reg))
		if err := w.Reload(); err != nil {
			return err
		}
		if serveOpt.Watch {
			if err := w.Watch(); err != nil {
				return err
			}
			defer w.Stop()
		}

		srv := &http.Server{
			Addr:              serveOpt.Address,
			Handler:           api.NewHandler(store, api.WithGatherer(reg)),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			zap.L().Info("Serving configuration", zap.String("addr", srv.Addr), zap.Bool("watch", serveOpt.Watch))
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		zap.L().Info("Received signal to stop serving")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVar(&serveOpt.Address, "addr", ":9080", "Listen address")
	flags.BoolVar(&serveOpt.Watch, "watch", false, "Reload when the configuration files change")
}

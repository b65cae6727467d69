package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/buckaroo/buckaroo-payments.api/config"
	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/handlers"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.Namespace = "buckaroo-payments.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d, err := dao.NewDAO(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if err := dao.Ping(ctx, 5*time.Second); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg, d)

	server := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting buckaroo-payments.api service", log.Data{"bind_addr": cfg.BindAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return dao.Disconnect(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error(err)
	}
	log.Trace("Exiting buckaroo-payments.api service")
}

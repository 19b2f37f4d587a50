// Command vtreed serves a signup endpoint validated by a vtree validator
// tree. Rejected requests are answered with a report that is stored and can
// be fetched again from /reports/{id}.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/vtree"
	"github.com/dmitrymomot/vtree/pkg/config"
	"github.com/dmitrymomot/vtree/pkg/httpvalidate"
	"github.com/dmitrymomot/vtree/pkg/logger"
	"github.com/dmitrymomot/vtree/pkg/messages"
	"github.com/dmitrymomot/vtree/pkg/reportstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(logger.WithEnvironment(cfg.AppEnv, cfg.AppName))
	logger.SetAsDefault(log)

	if err := vtree.LoadDefaultOptions(); err != nil {
		log.Error("Failed to load validator options", logger.Component("vtree"), logger.Error(err))
		os.Exit(1)
	}

	store, closeStore, err := reportstore.Open(ctx, cfg.Store)
	if err != nil {
		log.Error("Failed to open report store", logger.Component("reportstore"), logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = closeStore() }()

	catalog, err := messages.Default(messages.WithLogger(log.With(logger.Component("messages"))))
	if err != nil {
		log.Error("Failed to load messages", logger.Component("messages"), logger.Error(err))
		os.Exit(1)
	}

	names := newUsernames("admin", "root")
	signup := newSignupTree(names, vtree.WithLogger(log.With(logger.Component("vtree"))))

	hvOpts := []httpvalidate.Option{
		httpvalidate.WithStore(store),
		httpvalidate.WithCatalog(catalog),
		httpvalidate.WithLogger(log),
		httpvalidate.WithMaxBodySize(cfg.MaxBodySize),
	}

	var checks []func(context.Context) error
	if rs, ok := store.(*reportstore.Redis); ok {
		checks = append(checks, reportstore.Healthcheck(rs.Conn()))
	}

	r := chi.NewRouter()
	r.Get("/live", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ALIVE")) })
	r.Get("/ready", readiness(log, checks...))
	r.Post("/signup", httpvalidate.Handler(signup, signupHandler(names), hvOpts...))
	r.Get("/reports/{id}", httpvalidate.ReportHandler(store, func(r *http.Request) string {
		return chi.URLParam(r, "id")
	}, hvOpts...))

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(serve(ctx, srv, cfg.ShutdownTimeout, log.With(logger.Component("server"))))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}

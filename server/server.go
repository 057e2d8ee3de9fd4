// Package server exposes the palette engine over HTTP: a JSON API plus
// the embedded browser UI.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/robfig/cron/v3"

	"github.com/watzon/huebloom/config"
	"github.com/watzon/huebloom/palette"
)

// Application holds the server's shared state: configuration, logger,
// the palette cache, and the cron-rotated featured palette.
type Application struct {
	Config *config.Config
	Logger hclog.Logger
	Cache  *palette.Cache

	mu       sync.RWMutex
	featured *palette.Palette
}

// New creates an Application with an empty cache and an initial
// featured palette.
func New(cfg *config.Config, logger hclog.Logger) *Application {
	app := &Application{
		Config: cfg,
		Logger: logger,
		Cache:  palette.NewCache(),
	}
	app.rotateFeatured()
	return app
}

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts down
// gracefully. The featured palette rotation runs on the configured
// cron schedule for the lifetime of the server.
func (app *Application) Serve() error {
	srv := &http.Server{
		Addr:         app.Config.Addr,
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	c := cron.New()
	if _, err := c.AddFunc(app.Config.FeaturedCron, app.rotateFeatured); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	shutdownErr := make(chan error)
	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		s := <-shutdown
		app.Logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	app.Logger.Info("starting server", "addr", app.Config.Addr)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	app.Logger.Info("stopped server", "addr", app.Config.Addr)
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	wotdhttp "github.com/fwojciec/wotd/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or an interrupt is received, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := wotdhttp.NewServer()
	s.Addr = c.Addr
	s.WordService = deps.WordService
	s.Logger = deps.Logger

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(s.ListenAndServe)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), wotdhttp.DefaultShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

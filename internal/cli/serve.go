package cli

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/fontwell/fontwell/internal/server"
)

// serveCommand creates the serve command exposing the resolver over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the font resolver over HTTP",
		Long: `Start an HTTP server with three endpoints: GET /v1/resolve runs the
resolution chain, GET /fonts/ serves the fonts directory, and GET
/healthz reports liveness. The server shuts down cleanly on SIGINT.`,
		Example: `  fontwell serve
  fontwell serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, fallback :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the stylesheet cache")

	return cmd
}

// runServe executes the serve command, blocking until ctx is cancelled
// or the listener fails.
func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	if addr == "" {
		addr = c.Config.Serve.Addr
	}

	// Defaults must exist so the last resolver stage cannot fail.
	if err := c.runInit(); err != nil {
		return err
	}

	resolver, err := c.newResolver(ctx, noCache, false)
	if err != nil {
		return err
	}

	srv := server.New(resolver, c.fontsDir(), c.Logger)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return withLogger(ctx, c.Logger) },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	printInfo("Listening on %s", addr)
	c.Logger.Info("Server starting", "addr", addr, "fonts_dir", c.fontsDir())

	if err := httpSrv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	c.Logger.Info("Server stopped")
	return nil
}

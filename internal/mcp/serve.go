package mcp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ixiliae/mcp-fitness-stack/internal/logging"
)

// Run serves the adapter until shutdown. A zero port serves the MCP protocol
// over stdio; otherwise a streamable HTTP listener is started and drained
// gracefully on SIGINT/SIGTERM.
func Run(srv *Server, host string, port int, log logging.Logger) error {
	if port <= 0 {
		log.Info("serving MCP over stdio")
		return srv.ServeStdio()
	}

	addr := host + ":" + strconv.Itoa(port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

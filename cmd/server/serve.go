package main

import (
	"context"
	"errors"
	"net"
	"time"

	nethttp "net/http"
)

// serve runs srv on ln until ctx is done. It returns only after Shutdown has
// drained in-flight requests, so callers may release what handlers use.
// HTTPS is used when both certFile and keyFile are set.
func serve(ctx context.Context, srv *nethttp.Server, ln net.Listener, certFile, keyFile string, shutdownTimeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	var err error
	if certFile != "" && keyFile != "" {
		err = srv.ServeTLS(ln, certFile, keyFile)
	} else {
		err = srv.Serve(ln)
	}
	if !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	// Serve returns as soon as Shutdown starts; wait for it to finish.
	return <-done
}

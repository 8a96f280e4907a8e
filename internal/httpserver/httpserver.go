package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run starts the HTTP server and the retry worker, then blocks until a
// shutdown signal:
//  1. Map HTTP handlers and routes
//  2. Start the delivery retry worker
//  3. Start the HTTP server
//  4. Wait for SIGINT/SIGTERM
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()
	go srv.retryWorker.Start(workerCtx)
	srv.logger.Info(ctx, "Delivery retry worker started")

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping notification-admin service...")

	cancelWorker()

	return nil
}

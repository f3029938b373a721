package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"roomshare-server/logger"
)

const shutdownTimeout = 5 * time.Second

// RoomshareHttpServer wraps the mux router with lifecycle handling:
// route registration, startup, and graceful shutdown on SIGINT/SIGTERM.
type RoomshareHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
	log       logger.Logger
}

func NewRoomshareHttpServer(router *Router, muxRouter *mux.Router, addr string, log logger.Logger) *RoomshareHttpServer {
	return &RoomshareHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
		log:       log,
	}
}

// Start registers routes, serves until a termination signal arrives, then
// drains in-flight requests before returning.
func (s *RoomshareHttpServer) Start() error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", map[string]interface{}{"addr": s.addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	s.log.Info("server shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server exited", nil)
	return nil
}

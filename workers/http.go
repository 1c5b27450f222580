// Package workers holds the long-running service loops: the HTTP API and
// the per-chain event watch supervision.
package workers

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"gotokenbridge/config"
	"gotokenbridge/workers/handlers"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Worker_HTTP serves the API until ctx is cancelled, then drains in-flight
// requests for up to five seconds.
func Worker_HTTP(ctx context.Context, h *handlers.Handler, logger *zap.Logger) error {
	logger = logger.Named("http")
	logger.Info("starting HTTP service")

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Options("/*", CORSHeaders)

	r.Get("/health", h.HealthCheck)
	r.Get("/state", h.State)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/balance/{chainID}/{token}", h.Balance)
	r.Get("/rates", h.GetRates)

	r.Post("/bridge", h.Submit)
	r.Get("/transactions", h.GetTransactions)
	r.Get("/transactions/{id}", h.GetTransaction)

	var server *http.Server
	if config.Config.Server.UseSSL {
		cert, err := tls.LoadX509KeyPair("certchain.pem", "privatekey.pem")
		if err != nil {
			return fmt.Errorf("load TLS keypair: %w", err)
		}
		server = &http.Server{
			Addr:    ":443",
			Handler: r,
			TLSConfig: &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			},
		}
	} else {
		server = &http.Server{
			Addr:    fmt.Sprintf(":%d", config.Config.Server.Port),
			Handler: r,
		}
	}

	errC := make(chan error, 1)
	go func() {
		var err error
		if config.Config.Server.UseSSL {
			err = server.ListenAndServeTLS("", "")
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()
	logger.Info("HTTP service started", zap.String("addr", server.Addr))

	select {
	case err := <-errC:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	logger.Info("HTTP service stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("HTTP service shutdown normal")
	return nil
}

func CORSHeaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
	w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Origin, X-Requested-With")
}

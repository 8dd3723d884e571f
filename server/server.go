package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/argoproj-labs/sentry-msteams/pkg"
	"github.com/argoproj-labs/sentry-msteams/pkg/sentry"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

type Server interface {
	Serve(ctx context.Context, port int) error
}

type response struct {
	DeliveryID string `json:"deliveryId,omitempty"`
	Status     string `json:"status,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}

func NewServer(notifier pkg.Notifier, registry *metricsRegistry, serviceType string) *server {
	return &server{notifier: notifier, registry: registry, serviceType: serviceType}
}

type server struct {
	lock        sync.RWMutex
	notifier    pkg.Notifier
	registry    *metricsRegistry
	serviceType string
}

// SetNotifier replaces the notifier used for the next requests.
func (s *server) SetNotifier(notifier pkg.Notifier) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.notifier = notifier
}

func (s *server) getNotifier() pkg.Notifier {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.notifier
}

func writeJSON(w http.ResponseWriter, status int, res response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

func (s *server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var eventCtx sentry.EventContext
	if err := json.NewDecoder(r.Body).Decode(&eventCtx); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: fmt.Sprintf("cannot decode event: %v", err)})
		return
	}

	notifier := s.getNotifier()
	if notifier == nil {
		writeJSON(w, http.StatusServiceUnavailable, response{Error: "settings are not loaded"})
		return
	}

	deliveryID := uuid.New().String()
	logEntry := log.WithFields(log.Fields{"delivery": deliveryID, "project": eventCtx.Project.Slug})

	res, err := notifier.Notify(r.Context(), eventCtx, s.serviceType)
	if err != nil {
		s.registry.IncDeliveriesCounter(eventCtx.Project.Slug, resultFailed)
		logEntry.Errorf("Failed to deliver notification: %v", err)
		writeJSON(w, http.StatusBadGateway, response{DeliveryID: deliveryID, Error: err.Error()})
		return
	}

	switch res.Status {
	case pkg.StatusNotConfigured:
		s.registry.IncDeliveriesCounter(eventCtx.Project.Slug, resultNotConfigured)
		writeJSON(w, http.StatusOK, response{DeliveryID: deliveryID, Status: string(res.Status)})
	default:
		s.registry.IncDeliveriesCounter(eventCtx.Project.Slug, resultSent)
		out := response{DeliveryID: deliveryID, Status: string(res.Status)}
		if res.Response != nil {
			out.StatusCode = res.Response.StatusCode
		}
		logEntry.Infof("Notification sent, destination responded with %d", out.StatusCode)
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(bodySizeLimitMiddleware(maxBodyBytes))
	r.Post("/api/v1/events", s.handleEvent)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(prometheus.Gatherers{s.registry, prometheus.DefaultGatherer}, promhttp.HandlerOpts{}))
	return r
}

// Serve blocks until the context is cancelled or the listener fails.
func (s *server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("serving on port %d", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

func bodySizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

package restmachinery

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"github.com/krancour/courtside/internal/file"
	"github.com/krancour/courtside/sdk"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server is an interface for the component that responds to HTTP API requests
type Server interface {
	// ListenAndServe causes the API server to start serving HTTP requests. It
	// will block until an error occurs or the context is canceled.
	ListenAndServe(ctx context.Context) error
}

type server struct {
	config  Config
	handler http.Handler
	logger  logr.Logger
}

// NewServer returns a REST API server
func NewServer(
	config Config,
	baseEndpoints *BaseEndpoints,
	endpoints []Endpoints,
	logger logr.Logger,
) Server {
	var handler http.Handler = NewRouter(baseEndpoints, endpoints)
	if origins := config.AllowedOrigins(); len(origins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler(handler)
	}
	return &server{
		config:  config,
		handler: withLogger(handler, logger),
		logger:  logger,
	}
}

// NewRouter returns a router with the health check, the specified endpoints
// and JSON formatted 404 and 405 handling.
func NewRouter(
	baseEndpoints *BaseEndpoints,
	endpoints []Endpoints,
) *mux.Router {
	router := mux.NewRouter()
	router.StrictSlash(true)

	for _, eps := range endpoints {
		eps.Register(router)
	}

	// Health check
	router.HandleFunc(
		"/healthz",
		func(w http.ResponseWriter, r *http.Request) {
			baseEndpoints.ServeRequest(
				InboundRequest{
					W: w,
					R: r,
					EndpointLogic: func() (interface{}, error) {
						return struct{}{}, nil
					},
					SuccessCode: http.StatusOK,
				},
			)
		}, // No filters applied to this request
	).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			baseEndpoints.WriteAPIResponse(
				w,
				http.StatusNotFound,
				&sdk.ErrNotFound{Type: "Route", ID: r.URL.Path},
			)
		},
	)
	router.MethodNotAllowedHandler = http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			baseEndpoints.WriteAPIResponse(
				w,
				http.StatusMethodNotAllowed,
				&sdk.ErrMethodNotAllowed{Message: "Method not allowed"},
			)
		},
	)

	return router
}

func withLogger(handler http.Handler, logger logr.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.WithValues("method", r.Method, "path", r.URL.Path)
		reqLogger.V(1).Info("handling request")
		handler.ServeHTTP(w, r.WithContext(logr.NewContext(r.Context(), reqLogger)))
	})
}

func (s *server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port()),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	useTLS := s.config.TLSEnabled() &&
		file.Exists(s.config.TLSCertPath()) &&
		file.Exists(s.config.TLSKeyPath())
	if !useTLS {
		srv.Handler = h2c.NewHandler(s.handler, &http2.Server{})
	}

	errCh := make(chan error, 1)
	go func() {
		if useTLS {
			s.logger.Info(
				"API server is listening with TLS enabled",
				"port",
				s.config.Port(),
			)
			errCh <- srv.ListenAndServeTLS(
				s.config.TLSCertPath(),
				s.config.TLSKeyPath(),
			)
			return
		}
		s.logger.Info("API server is listening without TLS", "port", s.config.Port())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("API server is shutting down")
		shutdownCtx, cancel :=
			context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "error shutting down API server")
		}
		return nil
	}
}

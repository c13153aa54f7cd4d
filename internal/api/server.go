package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/salatchecker/internal/repository"
	"github.com/limbo/salatchecker/internal/service"
	"go.uber.org/zap"
)

const (
	defaultStoreTimeout = 10 * time.Second
	shutdownTimeout     = 10 * time.Second
)

type Server struct {
	mx            *chi.Mux
	userService   service.UserServiceI
	prayerService service.PrayerServiceI
	jwtService    JWTServiceI
	prayerTimes   PrayerTimesProviderI
	storage       repository.Pinger

	logger         *zap.Logger
	allowedOrigins []string
	production     bool
	environment    string
	storageDriver  string
	port           int
	storeTimeout   time.Duration
}

type ServicesList struct {
	UserService   service.UserServiceI
	PrayerService service.PrayerServiceI
	JwtService    JWTServiceI
	PrayerTimes   PrayerTimesProviderI
	// Used by health check, may be nil
	Storage repository.Pinger
}

type Option func(*Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCORS sets origins allowed to call the API. Outside production any localhost origin is accepted too.
func WithCORS(origins []string, production bool) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
		s.production = production
	}
}

// WithInfo sets values reported by the health endpoint.
func WithInfo(port int, environment, storageDriver string) Option {
	return func(s *Server) {
		s.port = port
		s.environment = environment
		s.storageDriver = storageDriver
	}
}

func WithStoreTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.storeTimeout = d
		}
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:            chi.NewMux(),
		userService:   servicesOptions.UserService,
		prayerService: servicesOptions.PrayerService,
		jwtService:    servicesOptions.JwtService,
		prayerTimes:   servicesOptions.PrayerTimes,
		storage:       servicesOptions.Storage,
		logger:        zap.NewNop(),
		environment:   "development",
		storeTimeout:  defaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(
		chimw.RealIP,
		s.RequestIDMiddleware,
		s.SettingUpLoggerMiddleware,
		s.RequestLogMiddleware,
		s.RecoverMiddleware,
		SecurityHeadersMiddleware,
		s.CORSMiddleware,
	)
	s.mx.NotFound(s.NotFound)
	s.mx.MethodNotAllowed(s.MethodNotAllowed)
	// served at the root and under /api, the prefix the web client uses
	s.mx.Group(s.routes)
	s.mx.Route("/api", s.routes)
}

func (s *Server) routes(r chi.Router) {
	r.Get("/health", s.Health)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.SignUp)
		r.Post("/signin", s.SignIn)
		r.With(s.AuthMiddleware, s.LoggerExtensionMiddleware).Get("/me", s.Me)
	})
	r.Route("/prayers", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/statistics/range", s.GetStatistics)
		r.Get("/times/{date}", s.GetPrayerTimes)
		r.Get("/{date}", s.GetPrayerRecord)
		r.Post("/{date}", s.SavePrayerRecord)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts the listener down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}

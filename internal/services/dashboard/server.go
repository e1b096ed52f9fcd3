package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/userdash/internal/platform/timeouts"
	"github.com/louisbranch/userdash/internal/services/dashboard/generator"
	"github.com/louisbranch/userdash/internal/services/dashboard/record"
)

// DefaultRecordCount is the number of generated users when none is configured.
const DefaultRecordCount = 48

// Config defines the inputs for the dashboard process.
type Config struct {
	HTTPAddr string
	// RecordCount is the number of generated users; zero selects DefaultRecordCount.
	RecordCount int
	// Seed drives the generator; zero draws a random seed.
	Seed int64
}

// Server hosts the dashboard over an in-memory user store.
type Server struct {
	httpAddr   string
	store      *record.Store
	seed       int64
	httpServer *http.Server
}

// NewServer generates the user records and builds the HTTP server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.RecordCount < 0 {
		return nil, fmt.Errorf("record count must be >= 0, got %d", config.RecordCount)
	}
	if config.RecordCount == 0 {
		config.RecordCount = DefaultRecordCount
	}

	records, seed, err := generator.GenerateSeeded(config.Seed, config.RecordCount)
	if err != nil {
		return nil, fmt.Errorf("generate records: %w", err)
	}
	store, err := record.NewStore(records)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(store, Options{}),
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
	}

	return &Server{
		httpAddr:   httpAddr,
		store:      store,
		seed:       seed,
		httpServer: httpServer,
	}, nil
}

// Store returns the server's user store.
func (s *Server) Store() *record.Store {
	if s == nil {
		return nil
	}
	return s.store
}

// Seed returns the generator seed used for the records.
func (s *Server) Seed() int64 {
	if s == nil {
		return 0
	}
	return s.seed
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("dashboard server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	stats := s.store.Stats()
	log.Printf("dashboard serving %d users (seed %d, %d active)", stats.Total, s.seed, stats.Active)
	log.Printf("dashboard listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

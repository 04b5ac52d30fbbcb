package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/williamdwatson/bananagrams-solver-web/pkg/solver"
)

// DefaultAddress matches the original service, which bound every interface
// on port 5000.
const DefaultAddress = "0.0.0.0:5000"

// Options configures the HTTP server. Timeouts default to conservative
// values suitable for a small JSON API.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	Logger            *log.Logger

	// RequestsPerSecond/Burst throttle all endpoints. Zero disables
	// throttling.
	RequestsPerSecond int
	Burst             int
}

// Dictionaries holds everything the handlers need of the two word lists:
// the file paths served verbatim by /words (re-read on every request) and
// the compiled forms the solver searches.
type Dictionaries struct {
	LongPath  string
	ShortPath string
	Long      []solver.Word
	Short     []solver.Word
}

// Server hosts the word-list and solver HTTP API.
type Server struct {
	http       *http.Server
	logger     *log.Logger
	opts       Options
	dicts      Dictionaries
	solverOpts solver.Options
}

// New constructs the server. It does not start listening until Start is
// called.
func New(dicts Dictionaries, solverOpts solver.Options, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddress
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 2 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 30 * time.Second
	}
	if opts.IdleTimeout == 0 {
		opts.IdleTimeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	s := &Server{
		logger:     opts.Logger,
		opts:       opts,
		dicts:      dicts,
		solverOpts: solverOpts,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /words", s.handleWords)
	mux.HandleFunc("POST /solve", s.handleSolve)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	middleware := []Middleware{Logging(opts.Logger)}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = opts.RequestsPerSecond
		}
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
		middleware = append(middleware, RateLimit(limiter))
	}

	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           CreateStack(middleware...)(mux),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          opts.Logger,
	}

	return s
}

// Handler exposes the composed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start begins serving in a background goroutine and returns immediately.
// Use Stop for graceful shutdown.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("server error: %v", err)
		}
	}()
}

// Stop gracefully shuts the server down, honoring ctx's deadline.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

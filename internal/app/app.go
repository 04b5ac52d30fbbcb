package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/williamdwatson/bananagrams-solver-web/internal/config"
	"github.com/williamdwatson/bananagrams-solver-web/internal/server"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/parser"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/solver"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/wordbank"
)

// App wires configuration, dictionaries and the HTTP server together.
type App struct {
	config *config.Config
	server *server.Server
	logger *log.Logger
}

// New creates a new instance of the application
func New(cfg *config.Config, logger *log.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	p := parser.New()

	// The solver's compiled dictionaries are loaded once at startup. A
	// missing file is logged rather than fatal so /words (which reads the
	// files per request) keeps serving whatever is on disk.
	long := loadDictionary(cfg.Dictionaries.LongFile, p, logger)
	short := loadDictionary(cfg.Dictionaries.ShortFile, p, logger)

	srv := server.New(
		server.Dictionaries{
			LongPath:  cfg.Dictionaries.LongFile,
			ShortPath: cfg.Dictionaries.ShortFile,
			Long:      long,
			Short:     short,
		},
		solver.Options{
			FilterLettersOnBoard: cfg.Solver.FilterLettersOnBoard,
			MaxWordsToCheck:      cfg.Solver.MaxWordsToCheck,
		},
		server.Options{
			Addr:              cfg.Addr(),
			ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
			Logger:            logger,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		},
	)

	return &App{
		config: cfg,
		server: srv,
		logger: logger,
	}, nil
}

// Run starts the server and blocks until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.server.Start()
	a.logger.Printf("listening on %s", a.config.Addr())

	<-ctx.Done()
	a.logger.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(a.config.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func loadDictionary(path string, p *parser.Parser, logger *log.Logger) []solver.Word {
	wb, err := wordbank.Load(path, p)
	if err != nil {
		logger.Printf("failed to load dictionary %s: %v", path, err)
		return nil
	}
	compiled := solver.Compile(wb.Words())
	logger.Printf("loaded %d words from %s", len(compiled), path)
	return compiled
}

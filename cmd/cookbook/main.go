// Cookbook — an in-memory recipe registry served over HTTP.
//
// Usage:
//
//	cookbook [-addr :8080] [-verbose] [-quiet] [-seed] [-max-depth 64]
//
// Flags override the COOKBOOK_* environment variables, which may also be
// set from a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hammamikhairi/cookbook/internal/api"
	"github.com/hammamikhairi/cookbook/internal/config"
	"github.com/hammamikhairi/cookbook/internal/display"
	"github.com/hammamikhairi/cookbook/internal/engine"
	"github.com/hammamikhairi/cookbook/internal/logger"
	"github.com/hammamikhairi/cookbook/internal/recipe"
	"github.com/hammamikhairi/cookbook/internal/storage"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the server and blocks until it stops, returning the process
// exit code. Deferred cleanup runs before main exits.
func run(args []string) int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	flags := flag.NewFlagSet("cookbook", flag.ContinueOnError)
	addr := flags.String("addr", cfg.Addr, "address to listen on")
	verbose := flags.Bool("verbose", cfg.LogLevel == logger.LevelVerbose, "enable verbose/debug logging")
	quiet := flags.Bool("quiet", cfg.LogLevel == logger.LevelOff, "disable all logging")
	logFile := flags.String("log-file", cfg.LogFile, "file to write logs to (empty or \"stderr\" logs to console)")
	maxDepth := flags.Int("max-depth", cfg.MaxDepth, "maximum recipe nesting depth for summaries")
	seed := flags.Bool("seed", cfg.Seed, "preload the sample cookbook")
	noBanner := flags.Bool("no-banner", false, "skip the startup banner")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		f, err := openLogFile(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	log := logger.New(logLevel, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire dependencies.
	store := storage.NewMemoryStore(log)
	eng := engine.New(store, log, engine.WithMaxDepth(*maxDepth))

	if *seed {
		n, err := recipe.Seed(ctx, eng, log)
		if err != nil {
			log.Error("seeding sample cookbook: %v", err)
			return 1
		}
		log.Info("seeded %d sample entries", n)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.NewRouter(eng, log, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if !*noBanner {
		fmt.Println(display.RenderBanner())
		fmt.Println(display.RenderStatus([]display.Field{
			{Label: "listening", Value: *addr},
			{Label: "log level", Value: logLevel.String()},
			{Label: "max depth", Value: strconv.Itoa(eng.MaxDepth())},
			{Label: "cors", Value: strings.Join(cfg.CORSOrigins, ", ")},
		}, display.Routes))
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("cookbook listening on %s", *addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server: %v", err)
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown: %v", err)
			return 1
		}
	}
	return 0
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

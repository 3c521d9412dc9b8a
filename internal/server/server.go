// Package server implements the HTTP lookup service over the identifier
// registry.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/core"
	"github.com/dcrodman/objdefs/internal/registry"
)

const shutdownTimeout = 5 * time.Second

// Loader builds the registry the server answers from.
type Loader func() (*registry.Registry, error)

// Server answers identifier lookups over HTTP. The registry it serves can
// be swapped at any time with Reload; requests in flight keep the registry
// they started with.
type Server struct {
	config *core.Config
	logger *logrus.Logger
	load   Loader

	reloadLock sync.Mutex
	current    atomic.Pointer[loaded]
	cache      *Cache
	metrics    *metrics
	handler    http.Handler
}

// A registry along with the number of the reload that produced it. Cached
// responses are keyed by generation so a response built from a replaced
// registry is never served.
type loaded struct {
	reg        *registry.Registry
	generation uint64
}

// New loads the configured registry source and prepares the routes. A nil
// load reads cfg.Registry.Source.
func New(cfg *core.Config, logger *logrus.Logger, load Loader) (*Server, error) {
	if load == nil {
		load = SourceLoader(cfg)
	}
	s := &Server{
		config:  cfg,
		logger:  logger,
		load:    load,
		cache:   NewCache(),
		metrics: newMetrics(),
	}
	s.handler = s.routes()

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// SourceLoader reads the source named in the config, relative to the config
// directory, or the embedded table when none is set.
func SourceLoader(cfg *core.Config) Loader {
	return func() (*registry.Registry, error) {
		return catalog.Open(sourcePath(cfg), cfg.Registry.Encoding)
	}
}

func sourcePath(cfg *core.Config) string {
	return cfg.QualifiedPath(cfg.Registry.Source)
}

// Registry returns the registry currently being served.
func (s *Server) Registry() *registry.Registry {
	return s.current.Load().reg
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Reload rebuilds the registry and swaps it in. On failure the previous
// registry stays in place.
func (s *Server) Reload() error {
	s.reloadLock.Lock()
	defer s.reloadLock.Unlock()

	reg, err := s.load()
	s.metrics.observeReload(err)
	if err != nil {
		return fmt.Errorf("error loading registry: %w", err)
	}

	report := reg.Validate()
	for _, f := range report.Errors() {
		s.logger.Warnf("registry has unresolved %s: %s", f.Kind, f.Message)
	}

	var generation uint64
	if prev := s.current.Load(); prev != nil {
		generation = prev.generation + 1
	}
	s.current.Store(&loaded{reg: reg, generation: generation})
	s.cache.Flush()
	s.metrics.setIdentifiers(reg)
	s.logger.Infof("serving %d identifiers (%d findings)", reg.Len(), len(report.Findings))
	return nil
}

// Start serves HTTP requests on the configured address until ctx is done,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.WebAddress())
	if err != nil {
		return fmt.Errorf("error starting listener on %s: %w", s.config.WebAddress(), err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s.config.Debugging.PprofEnabled {
		s.startPprofServer(ctx)
	}
	if s.config.Registry.Watch {
		if err := s.watch(ctx); err != nil {
			listener.Close()
			return err
		}
	}

	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		s.logger.Infof("lookup service waiting for requests on %s", listener.Addr())
		errChan <- httpServer.Serve(listener)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down lookup service: %w", err)
	}
	if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("lookup service exited")
	return nil
}

// Starts the default pprof HTTP server that can be accessed via localhost
// to get runtime information. See https://golang.org/pkg/net/http/pprof/
func (s *Server) startPprofServer(ctx context.Context) {
	listenerAddr := fmt.Sprintf("localhost:%d", s.config.Debugging.PprofPort)
	s.logger.Infof("starting pprof server on %s", listenerAddr)

	pprofServer := &http.Server{Addr: listenerAddr, Handler: http.DefaultServeMux}
	go func() {
		if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Infof("error starting pprof server: %s", err)
		}
	}()
	go func() {
		<-ctx.Done()
		pprofServer.Close()
	}()
}

// watchable returns the file to watch, or "" when the source is the
// embedded table or a glob.
func (s *Server) watchable() string {
	source := sourcePath(s.config)
	if source == "" || strings.ContainsAny(source, "*?[{") {
		return ""
	}
	if abs, err := filepath.Abs(source); err == nil {
		return abs
	}
	return source
}

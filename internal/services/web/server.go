// Package web hosts the browser-facing InvMgmt shell.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/invmgmt/internal/platform/branding"
	"github.com/louisbranch/invmgmt/internal/platform/timeouts"
	"github.com/louisbranch/invmgmt/internal/services/shared/templates"
	webapp "github.com/louisbranch/invmgmt/internal/services/web/app"
	module "github.com/louisbranch/invmgmt/internal/services/web/module"
	"github.com/louisbranch/invmgmt/internal/services/web/modules"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/httpx"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/observability"
	webstatic "github.com/louisbranch/invmgmt/internal/services/web/static"
)

// StaticPrefix is where the embedded assets are served.
const StaticPrefix = "/static/"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// AssetBaseURL prefixes asset links; defaults to StaticPrefix.
	AssetBaseURL  string
	HTMXScriptURL string
	Metadata      branding.Metadata
	// Logger receives request and panic logs; defaults to log.Default().
	Logger *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	listener   net.Listener
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	return newHandler(cfg, modules.DefaultModules())
}

func newHandler(cfg Config, mods []module.Module) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	assetBaseURL := strings.TrimSpace(cfg.AssetBaseURL)
	if assetBaseURL == "" {
		assetBaseURL = templates.DefaultAssetBaseURL
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(StaticPrefix, http.StripPrefix(StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.HandleFunc("GET /healthz", handleHealth)
	if _, err := webapp.BuildRootHandler(webapp.Config{
		Dependencies: module.Dependencies{
			Metadata:      cfg.Metadata,
			AssetBaseURL:  assetBaseURL,
			HTMXScriptURL: cfg.HTMXScriptURL,
		},
		Modules: mods,
	}, rootMux); err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Tracing(),
		observability.RequestLogger(logger),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if _, _, err := net.SplitHostPort(httpAddr); err != nil {
		return nil, fmt.Errorf("invalid http address %q: %w", httpAddr, err)
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the bound address once listening, or the configured one.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpAddr
}

// Listen binds the configured address. ListenAndServe calls it when needed.
func (s *Server) Listen() error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if s.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	s.listener = listener
	return nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := s.Listen(); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

// Package web parses web service flags and launches the shell server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/invmgmt/internal/platform/cmd"
	"github.com/louisbranch/invmgmt/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"INVMGMT_WEB_HTTP_ADDR"       envDefault:"localhost:8080"`
	AssetBaseURL  string `env:"INVMGMT_WEB_ASSET_BASE_URL"  envDefault:"/static/"`
	HTMXScriptURL string `env:"INVMGMT_WEB_HTMX_SCRIPT_URL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for static asset links")
	fs.StringVar(&cfg.HTMXScriptURL, "htmx-script-url", cfg.HTMXScriptURL, "Optional HTMX script URL added to the document head")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web shell server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return serve(ctx, cfg)
	})
}

func serve(ctx context.Context, cfg Config) error {
	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr:      cfg.HTTPAddr,
		AssetBaseURL:  cfg.AssetBaseURL,
		HTMXScriptURL: cfg.HTMXScriptURL,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if TIDEMARK_CONFIG is set
//  3. env (prefix TIDEMARK_)
func Load(ctx context.Context) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TIDEMARK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: TIDEMARK_WIDTH, TIDEMARK_MARKER_RADIUS, ...
	// Map env keys like TIDEMARK_MARKER_RADIUS -> marker_radius (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("TIDEMARK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tidemark_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: viewport %gx%g", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	if cfg.AxisInset < 0 || cfg.AxisInset*2 >= cfg.Width {
		return nil, fmt.Errorf("%w: axis inset %g does not fit width %g", ErrInvalidConfig, cfg.AxisInset, cfg.Width)
	}
	if cfg.TruncatePrefix > cfg.TruncateLimit {
		return nil, fmt.Errorf("%w: truncate prefix %d exceeds limit %d", ErrInvalidConfig, cfg.TruncatePrefix, cfg.TruncateLimit)
	}
	return &cfg, nil
}

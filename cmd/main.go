// Command tidemark renders a timeline SVG from a table file, standing in
// for the dashboard host during development.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/tidemark/internal/config"
	"github.com/okian/tidemark/internal/domain/mapper"
	"github.com/okian/tidemark/internal/domain/model"
	"github.com/okian/tidemark/internal/host"
	"github.com/okian/tidemark/internal/render"
	"github.com/okian/tidemark/internal/render/svg"
	"github.com/okian/tidemark/internal/sampledata"
	"github.com/okian/tidemark/internal/tablefile"
	"github.com/okian/tidemark/pkg/logger"
)

// File mode for written SVG documents.
const outputFileMode = 0o644

func main() {
	tablePath := flag.String("table", "", "path to a table file (.yaml, .yml or .csv)")
	demo := flag.Bool("demo", false, "render deterministic demo data instead of a table file")
	demoRows := flag.Int("rows", 0, "row count for demo data")
	width := flag.Float64("width", 0, "viewport width, overrides config")
	height := flag.Float64("height", 0, "viewport height, overrides config")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	table, err := loadTable(ctx, *tablePath, *demo, *demoRows)
	if err != nil {
		log.Error(ctx, "failed to load table", logger.Error(err))
		os.Exit(1)
	}

	viewport := model.Viewport{Width: cfg.Width, Height: cfg.Height}
	if *width > 0 {
		viewport.Width = *width
	}
	if *height > 0 {
		viewport.Height = *height
	}

	visual := newVisual(cfg, log)
	defer visual.Destroy()

	result, err := visual.Update(ctx, host.UpdateRequest{Table: table, Viewport: viewport})
	if err != nil {
		log.Error(ctx, "update cycle failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "timeline rendered",
		logger.String("updateID", result.UpdateID),
		logger.Int("records", len(result.Records)),
		logger.Int("markers", len(result.Scene.Markers)),
	)

	if err := writeOutput(*out, result.SVG); err != nil {
		log.Error(ctx, "failed to write output", logger.Error(err))
		os.Exit(1)
	}
}

// loadTable resolves the input table from the demo generator or a file.
func loadTable(ctx context.Context, path string, demo bool, rows int) (model.Table, error) {
	if demo || path == "" {
		opts := []sampledata.Option{}
		if rows > 0 {
			opts = append(opts, sampledata.WithRowCount(rows))
		}
		return sampledata.New(opts...).Table(ctx)
	}
	return tablefile.Load(path)
}

// newVisual wires the visual from configuration.
func newVisual(cfg *config.Config, log logger.Logger) *host.Visual {
	return host.New(
		host.WithLogger(log),
		host.WithMapper(mapper.New(
			mapper.WithTruncation(cfg.TruncateLimit, cfg.TruncatePrefix),
			mapper.WithDisplayLayout(cfg.DateLayout),
			mapper.WithLogger(log),
		)),
		host.WithRenderer(render.New(
			render.WithAxisInset(cfg.AxisInset),
			render.WithMarkerStyle(cfg.MarkerRadius, cfg.MarkerStrokeWidth, cfg.MarkerColor),
			render.WithHoverStyle(cfg.HoverRadius, cfg.HoverStrokeWidth, cfg.HighlightColor),
			render.WithTransition(time.Duration(cfg.TransitionMS)*time.Millisecond),
			render.WithTooltipOffset(cfg.TooltipOffset),
			render.WithLogger(log),
		)),
		host.WithEncoder(svg.NewEncoder(
			svg.WithBackground(cfg.Background),
		)),
	)
}

// writeOutput writes the document to a file, or stdout when path is empty.
func writeOutput(path, doc string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(doc)
		return err
	}
	return os.WriteFile(path, []byte(doc), outputFileMode)
}

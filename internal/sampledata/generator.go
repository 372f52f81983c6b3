// Package sampledata generates deterministic demo tables for the CLI and
// for tests that want realistic host input without a host.
package sampledata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/tidemark/internal/domain/model"
)

// Generation defaults.
const (
	defaultRowCount = 12
	defaultSeed     = 42
	defaultSpread   = 180 * 24 * time.Hour
	dateLayout      = "2006-01-02"

	// sharedDateEvery makes every Nth row reuse the previous row's date so
	// demo timelines always exercise marker grouping.
	sharedDateEvery = 4
)

// Catalog of synthetic event material.
var (
	eventNames = []string{
		"Kickoff", "Design Review", "Alpha Build", "Beta Build",
		"Load Test", "Security Audit", "Feature Freeze", "Release Candidate",
		"General Availability", "Postmortem", "Retrospective Workshop", "Roadmap Planning",
	}
	descriptions = []string{
		"Team-wide alignment on goals and scope.",
		"Walkthrough of the proposed architecture.",
		"First internal build available for testing.",
		"External testers invited to try the build.",
		"Sustained traffic replayed against staging.",
		"Third-party review of the attack surface.",
		"No new features accepted past this point.",
		"Build promoted for final verification.",
		"Publicly available to all customers.",
		"Review of what went wrong and why.",
		"Lessons captured for the next cycle.",
		"Priorities drafted for the next quarter.",
	}
	categories = []string{"planning", "engineering", "quality", "launch"}
	kinds      = []string{"milestone", "checkpoint", "incident"}
)

// Generator produces synthetic host tables.
type Generator struct {
	rows   int
	seed   int64
	start  time.Time
	spread time.Duration
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRowCount sets how many rows to generate.
func WithRowCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.rows = n
		}
	}
}

// WithSeed sets the random seed, keeping output reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithDateRange sets the first date and the span events are spread over.
func WithDateRange(start time.Time, spread time.Duration) Option {
	return func(g *Generator) {
		if !start.IsZero() && spread > 0 {
			g.start = start
			g.spread = spread
		}
	}
}

// New constructs a Generator with default configuration.
func New(opts ...Option) *Generator {
	g := &Generator{
		rows:   defaultRowCount,
		seed:   defaultSeed,
		start:  time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
		spread: defaultSpread,
	}

	// Apply all options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Table generates a host table with all five roles resolved. Output is
// deterministic for a given configuration.
func (g *Generator) Table(ctx context.Context) (model.Table, error) {
	if err := ctx.Err(); err != nil {
		return model.Table{}, fmt.Errorf("generation aborted: %w", err)
	}

	rng := rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic seed for reproducible demo data

	table := model.Table{
		Columns: []model.Column{
			{Name: "when", Roles: map[model.Role]bool{model.RoleDate: true}},
			{Name: "what", Roles: map[model.Role]bool{model.RoleEvent: true}},
			{Name: "details", Roles: map[model.Role]bool{model.RoleDescription: true}},
			{Name: "category", Roles: map[model.Role]bool{model.RoleColor: true}},
			{Name: "kind", Roles: map[model.Role]bool{model.RoleSymbol: true}},
		},
	}

	lastDate := g.start.Format(dateLayout)
	for i := 0; i < g.rows; i++ {
		date := lastDate
		if i == 0 || i%sharedDateEvery != 0 {
			offset := time.Duration(rng.Int63n(int64(g.spread)))
			date = g.start.Add(offset).Format(dateLayout)
			lastDate = date
		}

		table.Rows = append(table.Rows, []any{
			date,
			eventNames[i%len(eventNames)],
			descriptions[i%len(descriptions)],
			categories[rng.Intn(len(categories))],
			kinds[rng.Intn(len(kinds))],
		})
	}

	return table, nil
}

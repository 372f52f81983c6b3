// Package mapper transforms host tables into normalized display records.
//
// The mapper never fails on missing optional roles: an unresolved role
// yields an empty string (or the neutral visual default) in every record,
// and only the row count determines the output length.
package mapper

import (
	"context"
	"fmt"

	"github.com/okian/tidemark/internal/domain/encoding"
	"github.com/okian/tidemark/internal/domain/model"
	"github.com/okian/tidemark/pkg/logger"
	"github.com/okian/tidemark/pkg/metrics"
)

// Default mapping configuration constants.
const (
	// defaultTruncateLimit is the longest event label shown untruncated.
	defaultTruncateLimit = 10

	// defaultTruncatePrefix is how many leading runes survive truncation,
	// chosen so "HelloWorldExample" becomes "HelloWor...".
	defaultTruncatePrefix = 8

	// defaultEllipsis marks a truncated event label.
	defaultEllipsis = "..."

	// defaultDisplayLayout renders dates as DD/MM/YYYY.
	defaultDisplayLayout = "02/01/2006"

	// InvalidDateDisplay is the sentinel shown for unparseable dates.
	InvalidDateDisplay = "Invalid Date"
)

// Mapper maps host tables to records.
type Mapper struct {
	truncateLimit  int
	truncatePrefix int
	ellipsis       string
	displayLayout  string
	logger         logger.Logger
}

// New constructs a Mapper with default configuration.
func New(opts ...Option) *Mapper {
	m := &Mapper{
		truncateLimit:  defaultTruncateLimit,
		truncatePrefix: defaultTruncatePrefix,
		ellipsis:       defaultEllipsis,
		displayLayout:  defaultDisplayLayout,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Transform produces one record per table row, in row order, resolving
// color and symbol labels through the caller-held encoding state. The state
// is mutated in place: labels seen for the first time are assigned the next
// free palette slot, and assignments persist for the lifetime of the state.
func (m *Mapper) Transform(ctx context.Context, table model.Table, st *encoding.State) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransformAborted, err)
	}
	if st == nil {
		return nil, ErrNilEncodingState
	}

	idx := model.ResolveRoles(table)
	if m.logger != nil {
		m.logger.Debug(ctx, "resolved column roles",
			logger.Int("columns", len(table.Columns)),
			logger.Int("resolved", len(idx)),
			logger.Int("rows", len(table.Rows)),
		)
	}

	records := make([]model.Record, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, m.mapRow(row, idx, st))
	}

	metrics.RecordRowsMapped(len(records))
	metrics.UpdateRecordCount(len(records))

	return records, nil
}

// mapRow builds one record from one raw row.
func (m *Mapper) mapRow(row []any, idx model.RoleIndex, st *encoding.State) model.Record {
	rec := model.Record{
		Color:  encoding.NeutralColor,
		Symbol: encoding.NeutralSymbol,
	}

	if raw, ok := cell(row, idx, model.RoleDate); ok {
		rec.Date = raw
		rec.DateDisplay = m.formatDate(raw)
	}
	if raw, ok := cell(row, idx, model.RoleEvent); ok {
		rec.Event = raw
		rec.EventDisplay = m.truncate(raw)
	}
	if raw, ok := cell(row, idx, model.RoleDescription); ok {
		rec.Description = raw
	}
	if raw, ok := cell(row, idx, model.RoleColor); ok {
		rec.ColorAttribute = raw
		rec.Color = st.Colors.Resolve(raw)
	}
	if raw, ok := cell(row, idx, model.RoleSymbol); ok {
		rec.SymbolAttribute = raw
		rec.Symbol = st.Symbols.Resolve(raw)
	}

	return rec
}

// cell extracts and coerces the cell for a role, reporting whether the role
// resolved to a column present in this row.
func cell(row []any, idx model.RoleIndex, role model.Role) (string, bool) {
	col, ok := idx[role]
	if !ok || col < 0 || col >= len(row) {
		return "", false
	}
	return coerce(row[col]), true
}

// coerce converts a raw cell value to a display string. Generic conversion
// only; no locale-aware parsing happens here.
func coerce(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatDate renders a raw date value as DD/MM/YYYY, or the invalid-date
// sentinel when the value cannot be interpreted as a date.
func (m *Mapper) formatDate(raw string) string {
	ts, ok := model.ParseDate(raw)
	if !ok {
		metrics.RecordInvalidDate()
		return InvalidDateDisplay
	}
	return ts.Format(m.displayLayout)
}

// truncate shortens long event labels: labels at or under the limit pass
// through unchanged, longer ones keep the leading prefix plus an ellipsis.
func (m *Mapper) truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= m.truncateLimit {
		return s
	}
	return string(runes[:m.truncatePrefix]) + m.ellipsis
}

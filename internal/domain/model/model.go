// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"

	"github.com/okian/tidemark/internal/domain/encoding"
)

// Role is a semantic tag a host column may carry. It locates the relevant
// data without relying on column name or position.
type Role string

// The five recognized roles.
const (
	RoleDate        Role = "date"
	RoleEvent       Role = "event"
	RoleDescription Role = "description"
	RoleColor       Role = "color"
	RoleSymbol      Role = "symbol"
)

// Roles lists all recognized roles in resolution order.
func Roles() []Role {
	return []Role{RoleDate, RoleEvent, RoleDescription, RoleColor, RoleSymbol}
}

// Column describes one column of the host table.
type Column struct {
	Name  string
	Roles map[Role]bool
}

// Table is the tabular payload delivered by the host on every update.
// Each row is an ordered sequence of raw cell values aligned with Columns.
type Table struct {
	Columns []Column
	Rows    [][]any
}

// Viewport is the drawing surface size in length units.
type Viewport struct {
	Width  float64
	Height float64
}

// Record is one normalized, display-ready row derived from the host table.
type Record struct {
	Date            string // raw date identifier, scale input and grouping key
	DateDisplay     string // formatted DD/MM/YYYY, or the invalid-date sentinel
	Event           string
	EventDisplay    string // truncated event label
	Description     string
	ColorAttribute  string // raw category label for the color scale
	SymbolAttribute string // raw category label for the symbol scale
	Color           encoding.Color
	Symbol          encoding.Symbol
}

// RoleIndex maps each resolved role to its column index.
// Absent keys mean the role is unresolved.
type RoleIndex map[Role]int

// ResolveRoles scans the columns once and records, for each recognized role,
// the index of the last column carrying that role flag. When multiple columns
// share a role the later one overwrites the earlier assignment; this mirrors
// the host platform's observed behavior and is relied upon by callers.
func ResolveRoles(t Table) RoleIndex {
	idx := make(RoleIndex)
	for i, col := range t.Columns {
		for _, role := range Roles() {
			if col.Roles[role] {
				idx[role] = i
			}
		}
	}
	return idx
}

// dateLayouts is the ladder of accepted raw date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"01/02/2006",
}

// ParseDate parses a raw cell value as a calendar date, trying each accepted
// layout in order.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

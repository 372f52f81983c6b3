// Package tablefile loads host-style tables from YAML and CSV files so the
// CLI can feed the visual without a dashboard host.
package tablefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okian/tidemark/internal/domain/model"
)

// yamlTable is the on-disk YAML shape of a table.
type yamlTable struct {
	Columns []yamlColumn `yaml:"columns"`
	Rows    [][]any      `yaml:"rows"`
}

// yamlColumn describes one column and the roles it carries.
type yamlColumn struct {
	Name  string   `yaml:"name"`
	Roles []string `yaml:"roles"`
}

// csvRoleAliases maps CSV header names (case-insensitive) to roles.
var csvRoleAliases = map[string]model.Role{
	"date":        model.RoleDate,
	"when":        model.RoleDate,
	"timestamp":   model.RoleDate,
	"event":       model.RoleEvent,
	"title":       model.RoleEvent,
	"what":        model.RoleEvent,
	"description": model.RoleDescription,
	"details":     model.RoleDescription,
	"notes":       model.RoleDescription,
	"color":       model.RoleColor,
	"category":    model.RoleColor,
	"symbol":      model.RoleSymbol,
	"kind":        model.RoleSymbol,
}

// Load reads a table from a file, dispatching on the extension:
// .yaml/.yml or .csv.
func Load(path string) (model.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return model.Table{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadYAML reads a table document: columns with role lists, rows as
// sequences of raw cell values.
func LoadYAML(path string) (model.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	var doc yamlTable
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Table{}, fmt.Errorf("%w: %v", ErrParseTable, err)
	}

	table := model.Table{Rows: doc.Rows}
	for _, col := range doc.Columns {
		roles := make(map[model.Role]bool, len(col.Roles))
		for _, r := range col.Roles {
			roles[model.Role(strings.ToLower(strings.TrimSpace(r)))] = true
		}
		table.Columns = append(table.Columns, model.Column{Name: col.Name, Roles: roles})
	}
	return table, nil
}

// LoadCSV reads a table whose header row names map to roles
// case-insensitively (date/when/timestamp, event/title/what,
// description/details/notes, color/category, symbol/kind). Unrecognized
// headers become role-less columns.
func LoadCSV(path string) (model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %v", ErrReadFile, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: %v", ErrParseTable, err)
	}

	var table model.Table
	for _, name := range header {
		col := model.Column{Name: strings.TrimSpace(name), Roles: map[model.Role]bool{}}
		if role, ok := csvRoleAliases[strings.ToLower(col.Name)]; ok {
			col.Roles[role] = true
		}
		table.Columns = append(table.Columns, col)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Table{}, fmt.Errorf("%w: %v", ErrParseTable, err)
		}

		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = strings.TrimSpace(cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

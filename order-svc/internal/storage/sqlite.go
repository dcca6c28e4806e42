package storage

import (
	"strings"

	_ "modernc.org/sqlite"
)

type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) Placeholder(int) string { return "?" }

func (SQLite) RowKeyDefinition() string { return "pos INTEGER PRIMARY KEY AUTOINCREMENT" }

func (SQLite) IsMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

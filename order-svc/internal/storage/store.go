package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"group-dining/order-svc/internal/domain"
)

// Dialect covers the SQL differences between the supported drivers.
type Dialect interface {
	Name() string
	Placeholder(n int) string
	RowKeyDefinition() string
	IsMissingTable(err error) bool
}

// SQLTableStore keeps each logical table in its own SQL table. A hidden
// pos column preserves append order; every other column is TEXT.
type SQLTableStore struct {
	DB      *sql.DB
	dialect Dialect
}

func NewSQLTableStore(db *sql.DB, dialect Dialect) *SQLTableStore {
	return &SQLTableStore{DB: db, dialect: dialect}
}

func sqlTable(table string) string {
	return strings.ToLower(table)
}

func quote(ident string) string {
	return `"` + ident + `"`
}

func (s *SQLTableStore) columns(table string) ([]string, error) {
	cols, ok := domain.Columns[table]
	if !ok {
		return nil, fmt.Errorf("%s: %w", table, domain.ErrStoreUnavailable)
	}
	return cols, nil
}

func (s *SQLTableStore) wrap(table string, err error) error {
	if s.dialect.IsMissingTable(err) {
		return fmt.Errorf("%s: %v: %w", table, err, domain.ErrStoreUnavailable)
	}
	return err
}

func (s *SQLTableStore) GetAllRows(ctx context.Context, table string) ([]domain.Row, error) {
	cols, err := s.columns(table)
	if err != nil {
		return nil, err
	}

	quoted := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = quote(col)
	}
	rows, err := s.DB.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY pos", strings.Join(quoted, ", "), sqlTable(table)))
	if err != nil {
		return nil, s.wrap(table, err)
	}
	defer rows.Close()

	header := make(domain.Row, len(cols))
	copy(header, cols)
	result := []domain.Row{header}
	for rows.Next() {
		row := make(domain.Row, len(cols))
		dest := make([]any, len(cols))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLTableStore) AppendRow(ctx context.Context, table string, row domain.Row) error {
	cols, err := s.columns(table)
	if err != nil {
		return err
	}
	if err := checkWidth(table, cols, row); err != nil {
		return err
	}
	return s.insert(ctx, s.DB, table, cols, row)
}

func checkWidth(table string, cols []string, row domain.Row) error {
	if len(row) > len(cols) {
		return fmt.Errorf("%s: row has %d cells, table has %d columns: %w", table, len(row), len(cols), domain.ErrInvalidInput)
	}
	return nil
}

// insert writes row padded with empty cells to the table's width.
func (s *SQLTableStore) insert(ctx context.Context, db execer, table string, cols []string, row domain.Row) error {
	quoted := make([]string, len(cols))
	marks := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = quote(col)
		marks[i] = s.dialect.Placeholder(i + 1)
		args[i] = ""
		if i < len(row) {
			args[i] = row[i]
		}
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		sqlTable(table), strings.Join(quoted, ", "), strings.Join(marks, ", ")), args...)
	return s.wrap(table, err)
}

func (s *SQLTableStore) SetCell(ctx context.Context, table string, rowIndex, colIndex int, value string) error {
	cols, err := s.columns(table)
	if err != nil {
		return err
	}
	if colIndex < 1 || colIndex > len(cols) {
		return fmt.Errorf("%s column %d: %w", table, colIndex, domain.ErrNotFound)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	pos, err := s.rowKey(ctx, tx, table, rowIndex)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET %s = %s WHERE pos = %s",
		sqlTable(table), quote(cols[colIndex-1]), s.dialect.Placeholder(1), s.dialect.Placeholder(2)),
		value, pos); err != nil {
		return s.wrap(table, err)
	}
	return tx.Commit()
}

func (s *SQLTableStore) DeleteRow(ctx context.Context, table string, rowIndex int) error {
	if _, err := s.columns(table); err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	pos, err := s.rowKey(ctx, tx, table, rowIndex)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE pos = %s",
		sqlTable(table), s.dialect.Placeholder(1)), pos); err != nil {
		return s.wrap(table, err)
	}
	return tx.Commit()
}

// rowKey resolves a 1-based row index (header is row 1) to its pos value.
func (s *SQLTableStore) rowKey(ctx context.Context, tx *sql.Tx, table string, rowIndex int) (int64, error) {
	if rowIndex < 2 {
		return 0, fmt.Errorf("%s row %d: %w", table, rowIndex, domain.ErrNotFound)
	}
	var pos int64
	err := tx.QueryRowContext(ctx, fmt.Sprintf("SELECT pos FROM %s ORDER BY pos LIMIT 1 OFFSET %s",
		sqlTable(table), s.dialect.Placeholder(1)), rowIndex-2).Scan(&pos)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s row %d: %w", table, rowIndex, domain.ErrNotFound)
	}
	if err != nil {
		return 0, s.wrap(table, err)
	}
	return pos, nil
}

// EnsureSchema creates any missing table.
func (s *SQLTableStore) EnsureSchema(ctx context.Context) error {
	for _, table := range []string{domain.TableMenu, domain.TableSessions, domain.TableOrders} {
		defs := []string{s.dialect.RowKeyDefinition()}
		for _, col := range domain.Columns[table] {
			defs = append(defs, quote(col)+" TEXT NOT NULL DEFAULT ''")
		}
		stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", sqlTable(table), strings.Join(defs, ", "))
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

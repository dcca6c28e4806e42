package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"group-dining/order-svc/internal/domain"
)

// ImportCSV appends every record of r to table. A first record that matches
// the table's header is skipped. Either every record is imported or none.
func (s *SQLTableStore) ImportCSV(ctx context.Context, table string, r io.Reader) (int, error) {
	cols, err := s.columns(table)
	if err != nil {
		return 0, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []domain.Row
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read %s csv line %d: %w", table, line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), cols[0]) {
			continue
		}
		if err := checkWidth(table, cols, domain.Row(record)); err != nil {
			return 0, fmt.Errorf("import %s csv line %d: %w", table, line, err)
		}
		rows = append(rows, domain.Row(record))
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for i, row := range rows {
		if err := s.insert(ctx, tx, table, cols, row); err != nil {
			return 0, fmt.Errorf("import %s csv record %d: %w", table, i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}

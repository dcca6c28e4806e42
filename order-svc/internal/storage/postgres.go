package storage

import (
	"errors"
	"strconv"

	"github.com/lib/pq"
)

const pqUndefinedTable = "42P01"

type Postgres struct{}

func (Postgres) Name() string { return "postgres" }

func (Postgres) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (Postgres) RowKeyDefinition() string { return "pos BIGSERIAL PRIMARY KEY" }

func (Postgres) IsMissingTable(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable
}

// Package postgres implements the service stores on PostgreSQL.
package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

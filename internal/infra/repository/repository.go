// Package repository implements the write-side persistence ports on
// PostgreSQL via pgx, with squirrel as the query builder.
package repository

import sq "github.com/Masterminds/squirrel"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

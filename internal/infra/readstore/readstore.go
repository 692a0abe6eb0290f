// Package readstore implements the query-side ports. Read models go
// straight from SQL rows to view structs without passing through the
// domain entities.
package readstore

import sq "github.com/Masterminds/squirrel"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

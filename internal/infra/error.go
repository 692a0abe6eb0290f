package infra

import (
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ErrorKind int

const (
	NotFound ErrorKind = iota
	Conflict
	DuplicateKey
	DBFailure
)

// RepositoryError normalizes driver-level failures so upper layers can
// branch on kind without importing pgx.
type RepositoryError struct {
	Kind ErrorKind
	Err  error
}

func (e *RepositoryError) Error() string {
	return e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func WrapRepoErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	kind := DBFailure
	if errors.Is(err, pgx.ErrNoRows) {
		kind = NotFound
	} else {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				kind = DuplicateKey
			case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
				kind = Conflict
			}
		}
	}
	return errors.Wrap(&RepositoryError{Kind: kind, Err: err}, msg)
}

func IsKind(err error, kind ErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}

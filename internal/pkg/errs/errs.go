// Package errs wraps cockroachdb/errors behind the small surface the
// rest of the codebase needs: wrap with context, mark with a sentinel
// for errors.Is classification, and render stack traces for logs.
package errs

import (
	stderrors "errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as the sentinel identity of err; callers branch
// with errors.Is(err, markErr) while the original cause stays in the chain.
// The sentinel is joined into the unwrap chain so the standard library's
// errors.Is sees it, not only cockroachdb's.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(stderrors.Join(err, markErr), markErr)
}

// ExtractStackLines renders the %+v form of err capped at maxLines,
// for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

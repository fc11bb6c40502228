// Package errs wraps cockroachdb/errors behind the three operations the rest
// of the codebase needs: wrapping with context, creating, and marking an
// error with a sentinel so callers can match it with errors.Is.
package errs

import (
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

// Mark attaches markErr as a sentinel without changing the message or chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders the error with its stack trace and returns at
// most maxLines lines, for structured request logging of 5xx responses.
// A nil error or non-positive limit yields nil.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil || maxLines <= 0 {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}

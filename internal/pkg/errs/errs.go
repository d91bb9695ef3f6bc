// Package errs wraps cockroachdb/errors so the rest of the codebase never
// imports it directly. Mark is the workhorse: it ties an error to a sentinel
// while keeping the original chain visible to errors.Is.
package errs

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// New returns a stack-annotated error with a stable message.
func New(msg string) error {
	return crdb.New(msg)
}

// Wrap annotates err with msg. Nil in, nil out.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Wrap(err, msg)
}

// Mark attaches sentinel to err so Is matches either. A nil err collapses
// to the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return crdb.Mark(err, sentinel)
}

// Is reports whether target sits in err's chain, marks included. The
// stdlib errors.Is only walks Unwrap and cannot see marks, so every check
// against a Mark sentinel must go through here.
func Is(err, target error) bool {
	return crdb.Is(err, target)
}

// ExtractStackLines renders err verbosely and returns at most maxLines of
// the output, shaped for a structured log field.
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

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

// Mark tags err so errors.Is(err, mark) holds without changing its message.
// A nil err yields mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Recovered converts a value returned by recover() into an error that
// carries the panicking stack.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return cr.WithStackDepth(err, 2)
	}
	return cr.NewWithDepthf(2, "panic: %v", v)
}

// StackLines renders err verbosely and keeps at most limit lines.
// A limit of zero keeps everything.
func StackLines(err error, limit int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if limit > 0 && len(lines) > limit {
		return lines[:limit]
	}
	return lines
}

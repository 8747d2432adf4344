// Package sequence assigns human-readable document numbers of the form
// <PREFIX>-YYMMDD-NNN, scoped to the calendar date of allocation.
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NumberSource looks up the greatest existing number in a date-scoped series.
type NumberSource interface {
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// Allocator produces the next document number for one series.
type Allocator struct {
	source NumberSource
	prefix string
	now    func() time.Time
}

// New creates an Allocator for the given series prefix (e.g. "INV", "PO").
func New(source NumberSource, prefix string) *Allocator {
	return &Allocator{source: source, prefix: prefix, now: time.Now}
}

// WithClock overrides the clock. Used by tests.
func (a *Allocator) WithClock(now func() time.Time) *Allocator {
	a.now = now
	return a
}

// Next returns the next number in today's series. Two concurrent calls can
// return the same number; the store's unique index is the backstop and the
// caller retries once on a duplicate.
func (a *Allocator) Next(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("%s-%s", a.prefix, a.now().Format("060102"))
	last, err := a.source.LastNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("sequence.Next: looking up last number for %s: %w", prefix, err)
	}
	return fmt.Sprintf("%s-%03d", prefix, NextSeq(prefix, last)), nil
}

// NextSeq parses the numeric suffix of the last allocated number in the
// series identified by prefix (e.g. "INV-250314") and returns the next
// sequence value. Anything other than prefix, a dash, and a positive integer
// restarts the series at 1 rather than failing.
func NextSeq(prefix, last string) int {
	if last == "" {
		return 1
	}
	suffix := strings.TrimPrefix(last, prefix+"-")
	if suffix == last || strings.Contains(suffix, "-") {
		return 1
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return 1
	}
	return n + 1
}

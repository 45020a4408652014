// Package testing provides test utilities for plansql.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/plansql"
)

// Columns are the column names shared by the reference scenarios.
var Columns = []string{"a", "b", "c"}

func nullRows() [][]any {
	return [][]any{
		{1, 2, "A"},
		{1, 4, "BB"},
		{2, 6, "DDDD"},
		{nil, 5, "BB"},
		{2, 7, "CCC"},
		{1, 8, "CCC"},
	}
}

// DefaultNullOrdering sorts by a descending with NULLs last, then c
// ascending with NULLs first. Every dialect can express it.
func DefaultNullOrdering(t *testing.T) plansql.Node {
	t.Helper()
	return build(t, plansql.Values(Columns...).
		Rows(nullRows()...).
		OrderBy(
			plansql.Desc("a", plansql.NullsLast),
			plansql.Asc("c", plansql.NullsFirst),
		))
}

// CustomNullOrdering sorts by a descending with NULLs first, then c
// ascending with NULLs last. Dialects with a fixed NULL convention cannot
// express it.
func CustomNullOrdering(t *testing.T) plansql.Node {
	t.Helper()
	return build(t, plansql.Values(Columns...).
		Rows(nullRows()...).
		OrderBy(
			plansql.Desc("a", plansql.NullsFirst),
			plansql.Asc("c", plansql.NullsLast),
		))
}

// OrderWithLimit sorts by c then b, both ascending with NULLs first, and
// keeps four rows.
func OrderWithLimit(t *testing.T) plansql.Node {
	t.Helper()
	return build(t, plansql.Values(Columns...).
		Rows(
			[]any{4, 7, "CCC"},
			[]any{nil, 5, "BB"},
			[]any{6, 2, "A"},
			[]any{1, 4, "BB"},
			[]any{5, 3, "DDDD"},
			[]any{2, 8, "CCC"},
		).
		OrderBy(
			plansql.Asc("c", plansql.NullsFirst),
			plansql.Asc("b", plansql.NullsFirst),
		).
		Limit(4))
}

// PlainLimit keeps the first three of five rows without sorting.
func PlainLimit(t *testing.T) plansql.Node {
	t.Helper()
	return build(t, plansql.Values(Columns...).
		Rows(
			[]any{1, 2, "A"},
			[]any{3, 4, "BB"},
			[]any{5, 6, "CCC"},
			[]any{7, 8, "DDDD"},
			[]any{9, 10, "EEEEE"},
		).
		Limit(3))
}

func build(t *testing.T, b *plansql.Builder) plansql.Node {
	t.Helper()
	plan, err := b.Build()
	if err != nil {
		t.Fatalf("Failed to build plan: %v", err)
	}
	return plan
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRendered checks that the outcome carries the expected SQL.
func AssertRendered(t *testing.T, expected string, out plansql.Outcome) {
	t.Helper()
	if out.IsUnsupported() {
		t.Errorf("Expected SQL but outcome is UNSUPPORTED (%s)\nExpected: %s", out.Reason, expected)
		return
	}
	AssertSQL(t, expected, out.SQL)
}

// AssertUnsupported checks that the outcome is the UNSUPPORTED sentinel.
func AssertUnsupported(t *testing.T, out plansql.Outcome) {
	t.Helper()
	if !out.IsUnsupported() {
		t.Errorf("Expected UNSUPPORTED, got SQL: %s", out.SQL)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorIs checks that err wraps target.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("Expected error wrapping %v, got: %v", target, err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}

package usecase

import (
	"strings"

	"proconnect/internal/domain"
)

// Predicate is a structured filter ANDed with the text query.
type Predicate[T any] func(T) bool

// Fields returns the searchable text of an item.
type Fields[T any] func(T) []string

// Filter returns the items that satisfy every predicate and, unless the
// query is blank, contain the query as a case-insensitive substring in at
// least one searchable field. A whitespace-only query counts as blank; any
// other query is matched as given, surrounding spaces included. Relative
// order is preserved and items is never modified.
func Filter[T any](items []T, query string, fields Fields[T], preds ...Predicate[T]) []T {
	q := normalizeQuery(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !matchesAll(it, preds) {
			continue
		}
		if q != "" && !anyFieldContains(fields(it), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// ContainsFold reports whether s contains substr ignoring case. A blank
// substr matches everything.
func ContainsFold(s, substr string) bool {
	q := normalizeQuery(substr)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), q)
}

// normalizeQuery lowercases q, or returns "" when q is blank.
func normalizeQuery(q string) string {
	if strings.TrimSpace(q) == "" {
		return ""
	}
	return strings.ToLower(q)
}

func matchesAll[T any](it T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(it) {
			return false
		}
	}
	return true
}

func anyFieldContains(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func UserFields(u domain.User) []string { return []string{u.Name, u.Headline, u.Company} }

func JobFields(j domain.Job) []string { return []string{j.Title, j.Company} }

func PodFields(p domain.Pod) []string { return []string{p.Title, p.Description} }

// AllCategories is the pod category sentinel that disables category filtering.
const AllCategories = "All"

// PodCategories lists the categories offered by the pods view.
var PodCategories = []string{AllCategories, "Technology", "Career", "Product", "Design"}

func IsConnected(u domain.User) bool { return u.IsConnected }

func NotConnected(u domain.User) bool { return !u.IsConnected }

// JobLocation matches jobs whose location contains loc; blank matches all.
func JobLocation(loc string) Predicate[domain.Job] {
	return func(j domain.Job) bool { return ContainsFold(j.Location, loc) }
}

// PodCategory matches pods of exactly category, or every pod for "All" and
// the empty string.
func PodCategory(category string) Predicate[domain.Pod] {
	return func(p domain.Pod) bool {
		return category == "" || category == AllCategories || p.Category == category
	}
}

func Bookmarked(j domain.Job) bool { return j.Bookmarked }

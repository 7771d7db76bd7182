package expenses

import (
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// TotalsByCategory sums amounts and counts per category.
func TotalsByCategory(rows []Expense) map[string]CategoryTotal {
	out := make(map[string]CategoryTotal)
	for _, e := range rows {
		key := e.Category
		if key == "" {
			key = Uncategorized
		}
		t := out[key]
		t.Total += e.Amount
		t.Count++
		out[key] = t
	}
	return out
}

// SortedCategoryTotals orders category totals by descending amount, then by
// name.
func SortedCategoryTotals(totals map[string]CategoryTotal) []CategorySummary {
	out := make([]CategorySummary, 0, len(totals))
	for category, t := range totals {
		out = append(out, CategorySummary{Category: category, Total: t.Total, Count: t.Count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// RangeStart returns the first calendar day covered by r as seen from now's
// date in now's location. Weeks start on Sunday. It reports false for
// RangeAll and unknown ranges.
func RangeStart(r Range, now time.Time) (civil.Date, bool) {
	today := civil.DateOf(now)
	switch r {
	case RangeToday:
		return today, true
	case RangeWeek:
		return today.AddDays(-int(now.Weekday())), true
	case RangeMonth:
		return civil.Date{Year: today.Year, Month: today.Month, Day: 1}, true
	case RangeQuarter:
		first := (today.Month-1)/3*3 + 1
		return civil.Date{Year: today.Year, Month: first, Day: 1}, true
	case RangeYear:
		return civil.Date{Year: today.Year, Month: time.January, Day: 1}, true
	default:
		return civil.Date{}, false
	}
}

// FilterByRange keeps expenses dated on or after the start of r.
func FilterByRange(rows []Expense, r Range, now time.Time) []Expense {
	start, ok := RangeStart(r, now)
	if !ok {
		return rows
	}
	out := make([]Expense, 0, len(rows))
	for _, e := range rows {
		if !e.Date.Before(start) {
			out = append(out, e)
		}
	}
	return out
}

// Between keeps expenses dated within [start, end], both inclusive.
func Between(rows []Expense, start, end civil.Date) []Expense {
	out := make([]Expense, 0, len(rows))
	for _, e := range rows {
		if !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, e)
		}
	}
	return out
}

func ReimbursableOnly(rows []Expense) []Expense {
	out := make([]Expense, 0, len(rows))
	for _, e := range rows {
		if e.IsReimbursable {
			out = append(out, e)
		}
	}
	return out
}

// Query carries the list view filters and ordering.
type Query struct {
	Search   string
	Category string
	Range    Range
	Sort     string
	Desc     bool
}

// Apply filters rows by q relative to now and sorts the result stably.
func Apply(rows []Expense, q Query, now time.Time) []Expense {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Expense, 0, len(rows))
	for _, e := range FilterByRange(rows, q.Range, now) {
		if q.Category != "" && e.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Description), search) &&
			!strings.Contains(strings.ToLower(e.Vendor), search) &&
			!strings.Contains(strings.ToLower(e.Notes), search) {
			continue
		}
		out = append(out, e)
	}

	less := sortKeys[q.Sort]
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if q.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

var sortKeys = map[string]func(a, b Expense) bool{
	"date":        func(a, b Expense) bool { return a.Date.Before(b.Date) },
	"amount":      func(a, b Expense) bool { return a.Amount < b.Amount },
	"description": func(a, b Expense) bool { return strings.ToLower(a.Description) < strings.ToLower(b.Description) },
	"vendor":      func(a, b Expense) bool { return strings.ToLower(a.Vendor) < strings.ToLower(b.Vendor) },
}

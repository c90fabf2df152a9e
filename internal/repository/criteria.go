package repository

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm/clause"
)

const (
	pageKey    = "page"
	perPageKey = "per_page"
)

type Operator string

const (
	OpEquals Operator = "eq"
	OpIn     Operator = "in"
)

type Filter struct {
	Field    string
	Operator Operator
	Values   []string
}

func Equals(field, value string) Filter {
	return Filter{Field: field, Operator: OpEquals, Values: []string{value}}
}

func In(field string, values ...string) Filter {
	return Filter{Field: field, Operator: OpIn, Values: values}
}

// Expression compiles the filter against column, which must already be a
// resolved column name.
func (f Filter) Expression(column string) clause.Expression {
	col := clause.Column{Table: clause.CurrentTable, Name: column}
	if f.Operator == OpIn {
		values := make([]interface{}, len(f.Values))
		for i, v := range f.Values {
			values[i] = v
		}
		return clause.IN{Column: col, Values: values}
	}
	return clause.Eq{Column: col, Value: f.Values[0]}
}

type Query struct {
	Filters []Filter
	Page    int
	PerPage int
}

// Offset saturates at math.MaxInt instead of wrapping for huge pages.
func (q Query) Offset() int {
	if q.Page < 1 || q.PerPage < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.PerPage {
		return math.MaxInt
	}
	return (q.Page - 1) * q.PerPage
}

// LastPage is the number of pages needed for total rows, at least 1.
func (q Query) LastPage(total int64) int {
	if total <= 0 || q.PerPage < 1 {
		return 1
	}
	perPage := int64(q.PerPage)
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return int(pages)
}

// ParseCriteria turns raw criteria into a Query. Filters are sorted by field
// so the generated SQL is stable. per_page is capped at maxPerPage.
func ParseCriteria(criteria SearchCriteria, defaultPerPage, maxPerPage int) Query {
	query := Query{
		Page:    positiveOr(criteria[pageKey], 1),
		PerPage: positiveOr(criteria[perPageKey], defaultPerPage),
	}
	if maxPerPage > 0 && query.PerPage > maxPerPage {
		query.PerPage = maxPerPage
	}
	for field, value := range criteria {
		if field == pageKey || field == perPageKey {
			continue
		}
		tokens := strings.Split(value, ",")
		if len(tokens) > 1 {
			query.Filters = append(query.Filters, In(field, tokens...))
		} else {
			query.Filters = append(query.Filters, Equals(field, value))
		}
	}
	sort.Slice(query.Filters, func(i, j int) bool {
		return query.Filters[i].Field < query.Filters[j].Field
	})
	return query
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

package catalog

import "strings"

// Filter is a composable predicate built from independent, optional
// dimensions. Dimensions combine with AND; an omitted dimension adds no
// condition at all, never a match-everything clause. The storage layer
// translates the conditions to its own query dialect.
type Filter struct {
	search *SearchCond
	ins    []InCond
	ranges []RangeCond
	eqs    []EqCond
}

// SearchCond is a case-insensitive substring match over a fixed set of
// text columns, combined with OR.
type SearchCond struct {
	Term    string
	Columns []string
}

// InCond restricts a column to a set of values.
type InCond struct {
	Column string
	Values []interface{}
}

// RangeCond is a single inclusive bound on a column.
type RangeCond struct {
	Column string
	Op     string // ">=" or "<="
	Value  interface{}
}

// EqCond is an exact equality condition.
type EqCond struct {
	Column string
	Value  interface{}
}

// Search adds a free-text condition. Blank terms add nothing.
func (f *Filter) Search(term string, columns ...string) *Filter {
	term = strings.TrimSpace(term)
	if term == "" {
		return f
	}
	f.search = &SearchCond{Term: term, Columns: columns}
	return f
}

// In adds a value-set condition. Empty sets add nothing.
func (f *Filter) In(column string, values []interface{}) *Filter {
	if len(values) == 0 {
		return f
	}
	f.ins = append(f.ins, InCond{Column: column, Values: values})
	return f
}

// GTE adds an inclusive lower bound.
func (f *Filter) GTE(column string, value interface{}) *Filter {
	f.ranges = append(f.ranges, RangeCond{Column: column, Op: ">=", Value: value})
	return f
}

// LTE adds an inclusive upper bound.
func (f *Filter) LTE(column string, value interface{}) *Filter {
	f.ranges = append(f.ranges, RangeCond{Column: column, Op: "<=", Value: value})
	return f
}

// Eq adds an equality condition.
func (f *Filter) Eq(column string, value interface{}) *Filter {
	f.eqs = append(f.eqs, EqCond{Column: column, Value: value})
	return f
}

func (f *Filter) SearchCond() *SearchCond { return f.search }
func (f *Filter) InConds() []InCond       { return f.ins }
func (f *Filter) RangeConds() []RangeCond { return f.ranges }
func (f *Filter) EqConds() []EqCond       { return f.eqs }

// IsEmpty reports whether the filter matches the unrestricted set.
func (f *Filter) IsEmpty() bool {
	return f.search == nil && len(f.ins) == 0 && len(f.ranges) == 0 && len(f.eqs) == 0
}

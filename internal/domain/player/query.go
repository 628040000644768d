package player

import (
	"math"
	"net/url"
	"strings"
)

const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 25
)

// Stored field names referenced by queries.
const (
	FieldTeam     = "team"
	FieldPosition = "position"
	FieldPrice    = "price"
)

type SortDirection int

const (
	SortDescending SortDirection = -1
	SortAscending  SortDirection = 1
)

func (d SortDirection) String() string {
	if d == SortAscending {
		return "asc"
	}
	return "desc"
}

// Pagination is a resolved page window. Skip is always derived from Page and
// Limit and is never negative; Limit is at least 1.
type Pagination struct {
	Page  int64
	Limit int64
	Skip  int64
}

// Sort orders results by a single stored field. An empty Field keeps the
// store's natural order.
type Sort struct {
	Field     string
	Direction SortDirection
}

func (s Sort) IsZero() bool { return s.Field == "" }

// Filter is a conjunction of the present predicates. Nil fields do not
// constrain the result.
type Filter struct {
	Team     *string
	Position *string
	MaxPrice *int64
	MinPrice *int64
}

func (f Filter) IsEmpty() bool {
	return f.Team == nil && f.Position == nil && f.MaxPrice == nil && f.MinPrice == nil
}

// Query is the bounded store query produced from listing parameters.
type Query struct {
	Pagination Pagination
	Sort       Sort
	Filter     Filter
}

// ParseQuery interprets raw listing parameters. It never fails: malformed
// values fall back to their defaults and unknown keys are ignored.
func ParseQuery(values url.Values) Query {
	return Query{
		Pagination: ParsePagination(values),
		Sort:       ParseSort(values),
		Filter:     ParseFilter(values),
	}
}

func ParsePagination(values url.Values) Pagination {
	rawPage, hasPage := param(values, "page")
	rawLimit, hasLimit := param(values, "limit")
	if !hasPage && !hasLimit {
		return NewPagination(DefaultPage, DefaultLimit)
	}

	page, ok := parseLeadingInt(rawPage)
	if !ok {
		page = DefaultPage
	}
	limit, ok := parseLeadingInt(rawLimit)
	if !ok {
		limit = DefaultLimit
	}
	return NewPagination(page, limit)
}

// NewPagination clamps limit to at least 1 and derives a non-negative skip.
// The page is kept as given so callers can echo it back.
func NewPagination(page, limit int64) Pagination {
	if limit < 1 {
		limit = 1
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  skipFor(page, limit),
	}
}

func skipFor(page, limit int64) int64 {
	if page <= 1 {
		return 0
	}
	if page-1 > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return (page - 1) * limit
}

// ParseSort treats a sortBy value that is not a usable stored field path as
// absent, so the store never sees an operator or an empty path segment.
func ParseSort(values url.Values) Sort {
	field, ok := param(values, "sortBy")
	if !ok || !validFieldPath(field) {
		return Sort{}
	}
	direction := SortDescending
	if values.Get("order") == "asc" {
		direction = SortAscending
	}
	return Sort{Field: field, Direction: direction}
}

func ParseFilter(values url.Values) Filter {
	var filter Filter
	if team, ok := param(values, "team"); ok {
		filter.Team = &team
	}
	if position, ok := param(values, "position"); ok {
		filter.Position = &position
	}
	if raw, ok := param(values, "maxPrice"); ok {
		if n, ok := parseLeadingInt(raw); ok {
			filter.MaxPrice = &n
		}
	}
	if raw, ok := param(values, "minPrice"); ok {
		if n, ok := parseLeadingInt(raw); ok {
			filter.MinPrice = &n
		}
	}
	return filter
}

// validFieldPath rejects paths with a NUL byte, a segment starting with '$'
// or an empty dotted segment.
func validFieldPath(path string) bool {
	if strings.IndexByte(path, 0) >= 0 {
		return false
	}
	for _, segment := range strings.Split(path, ".") {
		if segment == "" || segment[0] == '$' {
			return false
		}
	}
	return true
}

// param reports a key as present only when it carries a non-empty value.
func param(values url.Values, key string) (string, bool) {
	v := values.Get(key)
	return v, v != ""
}

// parseLeadingInt reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows, so "12abc" is 12. It
// fails when no digit is found or the value does not fit in an int64.
func parseLeadingInt(raw string) (int64, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	digits := 0
	for ; digits < len(s); digits++ {
		c := s[digits]
		if c < '0' || c > '9' {
			break
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}

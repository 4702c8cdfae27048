package movies

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type valueKind int

const (
	kindText valueKind = iota
	kindInt
	kindFloat
)

type predicate struct {
	param  string
	column string
	op     string
	kind   valueKind
}

// predicates lists the recognised query parameters in the order their
// conditions appear in the WHERE clause. runtime and gross bounds compare
// the stored text, so "99 min" sorts before "9 min".
var predicates = []predicate{
	{"series_title", "series_title", "ilike", kindText},
	{"released_year", "released_year", "=", kindInt},
	{"runtime", "runtime", "=", kindText},
	{"runtime_lt", "runtime", "<", kindText},
	{"runtime_gt", "runtime", ">", kindText},
	{"genre", "genre", "ilike", kindText},
	{"imdb_rating", "imdb_rating", "=", kindFloat},
	{"imdb_rating_lt", "imdb_rating", "<", kindFloat},
	{"imdb_rating_gt", "imdb_rating", ">", kindFloat},
	{"no_of_votes", "no_of_votes", "=", kindInt},
	{"no_of_votes_lt", "no_of_votes", "<", kindInt},
	{"no_of_votes_gt", "no_of_votes", ">", kindInt},
	{"gross", "gross", "=", kindText},
	{"gross_lt", "gross", "<", kindText},
	{"gross_gt", "gross", ">", kindText},
}

type condition struct {
	column string
	op     string
	value  any
}

// Filter is a conjunction of conditions over the movies table. The zero
// value matches every row.
type Filter struct {
	conds []condition
}

// ParseFilter reads the first value of each recognised parameter. Empty
// values and unknown parameters are ignored; a malformed number is a
// validation error.
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter
	for _, p := range predicates {
		raw := q.Get(p.param)
		if raw == "" {
			continue
		}

		var value any
		switch p.kind {
		case kindInt:
			n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return Filter{}, fmt.Errorf("%s must be an integer, got %q: %w", p.param, raw, ErrValidation)
			}
			value = n
		case kindFloat:
			x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return Filter{}, fmt.Errorf("%s must be a number, got %q: %w", p.param, raw, ErrValidation)
			}
			value = x
		default:
			value = raw
		}
		f.conds = append(f.conds, condition{column: p.column, op: p.op, value: value})
	}
	return f, nil
}

// Len returns the number of conditions.
func (f Filter) Len() int {
	return len(f.conds)
}

// Where renders the conditions as " WHERE a AND b" with placeholders
// numbered from startArg. An empty filter renders as "".
func (f Filter) Where(startArg int) (string, []any) {
	if len(f.conds) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(f.conds))
	args := make([]any, 0, len(f.conds))
	for i, c := range f.conds {
		n := startArg + i
		if c.op == "ilike" {
			parts = append(parts, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", c.column, n))
		} else {
			parts = append(parts, fmt.Sprintf("%s %s $%d", c.column, c.op, n))
		}
		args = append(args, c.value)
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/staffgrid/staffgrid/pkg/fn"
)

// Fields maps grid column names to accessors over a row type. The accessor
// result must be a string or a numeric scalar; comparisons use the value's
// natural ordering.
type Fields[T any] map[string]func(T) any

// Process runs the full pipeline: filter rows, stable multi-key sort, then
// slice the window. It returns the page and the total match count before
// pagination. The input slice is never reordered or mutated.
func Process[T any](rows []T, fields Fields[T], filter FilterSpec, sortSpec SortSpec, window PageWindow) ([]T, int) {
	matched := fn.Filter(rows, func(row T) bool {
		return Matches(fields, row, filter)
	})
	total := len(matched)

	if len(sortSpec) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return less(fields, matched[i], matched[j], sortSpec)
		})
	}

	window = window.Clamp()
	start := window.Page * window.PageSize
	end := start + window.PageSize
	if start >= total {
		return []T{}, total
	}
	if end > total {
		end = total
	}
	return matched[start:end], total
}

// Matches reports whether a row satisfies every condition in the spec.
func Matches[T any](fields Fields[T], row T, filter FilterSpec) bool {
	for _, c := range filter.Conditions {
		if !MatchesCondition(fields, row, c) {
			return false
		}
	}
	return true
}

// MatchesCondition evaluates one condition against a row. Unknown fields
// and unknown operators match unconditionally; a condition the server
// cannot interpret must not hide rows (fail-open).
func MatchesCondition[T any](fields Fields[T], row T, c Condition) bool {
	get, ok := fields[c.Field]
	if !ok {
		return true
	}
	have := Stringify(get(row))
	switch c.Operator {
	case OpContains:
		return strings.Contains(strings.ToLower(have), strings.ToLower(c.Value))
	case OpEquals:
		return have == c.Value
	case OpStartsWith:
		return strings.HasPrefix(strings.ToLower(have), strings.ToLower(c.Value))
	default:
		return true
	}
}

// less orders two rows under the multi-key spec. Keys are applied in
// listed order; a desc key inverts the ascending comparison.
func less[T any](fields Fields[T], a, b T, keys SortSpec) bool {
	for _, k := range keys {
		get, ok := fields[k.Field]
		if !ok {
			continue
		}
		cmp := compare(get(a), get(b))
		if k.Direction == Desc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
	}
	return false
}

// compare orders two field values: numerically when both sides are
// numeric, lexicographically otherwise.
func compare(a, b any) int {
	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(Stringify(a), Stringify(b))
}

// Stringify renders a field value the way `equals` compares it: integers
// without a decimal point, floats in their shortest form.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return ""
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	default:
		return 0, false
	}
}

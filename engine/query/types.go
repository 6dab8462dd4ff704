// Package query implements the server-side grid query pipeline:
// filter, stable multi-key sort, then page slicing, over an in-memory
// dataset. Processing is pure and never mutates its input.
//
// The package deliberately fails open: malformed sort/filter models and
// unknown operators degrade to "no constraint" instead of rejecting the
// request, so a confused grid widget still gets data back.
package query

// Filter operators understood by the processor. Anything else is treated
// as a no-op condition (see MatchesCondition).
const (
	OpContains   = "contains"
	OpEquals     = "equals"
	OpStartsWith = "startsWith"
)

// Direction orders a sort key.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Condition is one field/operator/value filter term.
type Condition struct {
	Field    string
	Operator string
	Value    string
}

// FilterSpec is an AND of conditions. Zero conditions matches everything.
type FilterSpec struct {
	Conditions []Condition
}

// Empty reports whether the spec has no conditions.
func (f FilterSpec) Empty() bool { return len(f.Conditions) == 0 }

// SortKey is one field/direction pair.
type SortKey struct {
	Field     string
	Direction Direction
}

// SortSpec is an ordered multi-key sort: the first key is primary, later
// keys break ties in listed order. Empty preserves dataset order.
type SortSpec []SortKey

// Paging defaults and bounds.
const (
	DefaultPageSize = 25
	MaxPageSize     = 500
)

// PageWindow is a zero-based page index plus a page size.
type PageWindow struct {
	Page     int
	PageSize int
}

// Clamp normalises an out-of-range window instead of failing: negative
// pages become 0, non-positive sizes fall back to DefaultPageSize, and
// oversized pages are capped at MaxPageSize.
func (w PageWindow) Clamp() PageWindow {
	if w.Page < 0 {
		w.Page = 0
	}
	if w.PageSize < 1 {
		w.PageSize = DefaultPageSize
	}
	if w.PageSize > MaxPageSize {
		w.PageSize = MaxPageSize
	}
	return w
}

// Params bundles one request's filter, sort, and page window.
type Params struct {
	Filter FilterSpec
	Sort   SortSpec
	Window PageWindow
}

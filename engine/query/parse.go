package query

import (
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

// Wire shapes sent by the grid widget. The filter item keys come in two
// spellings depending on the widget version; both are accepted.
type sortModelItem struct {
	Field string `json:"field"`
	Sort  string `json:"sort"`
}

type filterModelItem struct {
	ColumnField   string `json:"columnField"`
	Field         string `json:"field"`
	OperatorValue string `json:"operatorValue"`
	Operator      string `json:"operator"`
	Value         any    `json:"value"`
}

type filterModel struct {
	Items []filterModelItem `json:"items"`
}

// ParseSortModel decodes a sortModel query parameter: a JSON array of
// {field, sort} objects. Malformed input yields an empty spec: the sort
// stage is skipped rather than the request rejected (fail-open).
func ParseSortModel(raw string) SortSpec {
	if raw == "" {
		return nil
	}
	var items []sortModelItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	spec := make(SortSpec, 0, len(items))
	for _, it := range items {
		if it.Field == "" {
			continue
		}
		dir := Asc
		if it.Sort == string(Desc) {
			dir = Desc
		}
		spec = append(spec, SortKey{Field: it.Field, Direction: dir})
	}
	return spec
}

// ParseFilterModel decodes a filterModel query parameter: a JSON object
// {items: [{columnField|field, operatorValue|operator, value}]}. Malformed
// input yields an empty spec, so the request behaves as if unfiltered
// (fail-open).
func ParseFilterModel(raw string) FilterSpec {
	if raw == "" {
		return FilterSpec{}
	}
	var model filterModel
	if err := json.Unmarshal([]byte(raw), &model); err != nil {
		return FilterSpec{}
	}
	conds := make([]Condition, 0, len(model.Items))
	for _, it := range model.Items {
		field := it.ColumnField
		if field == "" {
			field = it.Field
		}
		if field == "" {
			continue
		}
		op := it.OperatorValue
		if op == "" {
			op = it.Operator
		}
		conds = append(conds, Condition{
			Field:    field,
			Operator: op,
			Value:    Stringify(it.Value),
		})
	}
	return FilterSpec{Conditions: conds}
}

// ParseWindow reads page/pageSize query parameters. Missing or unparsable
// values default to page 0 and DefaultPageSize; out-of-range values are
// clamped.
func ParseWindow(values url.Values) PageWindow {
	w := PageWindow{Page: 0, PageSize: DefaultPageSize}
	if s := values.Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			w.Page = n
		}
	}
	if s := values.Get("pageSize"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			w.PageSize = n
		}
	}
	return w.Clamp()
}

// ParamsFromQuery assembles the full query params from a request's URL
// query string.
func ParamsFromQuery(values url.Values) Params {
	return Params{
		Filter: ParseFilterModel(values.Get("filterModel")),
		Sort:   ParseSortModel(values.Get("sortModel")),
		Window: ParseWindow(values),
	}
}

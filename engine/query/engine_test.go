package query

import (
	"reflect"
	"testing"
)

type row struct {
	ID   int
	Name string
	Dept string
	Age  int
}

var rowFields = Fields[row]{
	"id":   func(r row) any { return r.ID },
	"name": func(r row) any { return r.Name },
	"dept": func(r row) any { return r.Dept },
	"age":  func(r row) any { return r.Age },
}

func ids(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func sampleRows() []row {
	return []row{
		{ID: 1, Name: "John Doe", Dept: "Engineering", Age: 38},
		{ID: 2, Name: "Jane Smith", Dept: "Engineering", Age: 41},
		{ID: 3, Name: "doe jane", Dept: "Sales", Age: 29},
		{ID: 4, Name: "Ada Wong", Dept: "Engineering", Age: 41},
		{ID: 5, Name: "Bob Stone", Dept: "Sales", Age: 29},
	}
}

func TestProcessEmptyFilterReturnsAll(t *testing.T) {
	rows := sampleRows()
	page, total := Process(rows, rowFields, FilterSpec{}, nil, PageWindow{Page: 0, PageSize: 10})
	if total != len(rows) {
		t.Fatalf("expected total %d, got %d", len(rows), total)
	}
	if !reflect.DeepEqual(ids(page), []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected dataset order, got %v", ids(page))
	}
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	Process(rows, rowFields, FilterSpec{}, SortSpec{{Field: "name", Direction: Asc}}, PageWindow{Page: 0, PageSize: 10})
	if !reflect.DeepEqual(ids(rows), []int{1, 2, 3, 4, 5}) {
		t.Fatalf("input slice reordered: %v", ids(rows))
	}
}

func TestProcessPageLength(t *testing.T) {
	rows := sampleRows()
	cases := []struct {
		page, size, want int
	}{
		{0, 2, 2},
		{1, 2, 2},
		{2, 2, 1}, // short tail
		{3, 2, 0}, // past the end
		{0, 10, 5},
	}
	for _, tc := range cases {
		page, total := Process(rows, rowFields, FilterSpec{}, nil, PageWindow{Page: tc.page, PageSize: tc.size})
		if total != 5 {
			t.Fatalf("page=%d size=%d: expected total 5, got %d", tc.page, tc.size, total)
		}
		if len(page) != tc.want {
			t.Fatalf("page=%d size=%d: expected %d rows, got %d", tc.page, tc.size, tc.want, len(page))
		}
	}
}

func TestProcessPageSlicesInOrder(t *testing.T) {
	rows := sampleRows()
	page, _ := Process(rows, rowFields, FilterSpec{}, nil, PageWindow{Page: 1, PageSize: 2})
	if !reflect.DeepEqual(ids(page), []int{3, 4}) {
		t.Fatalf("expected [3 4], got %v", ids(page))
	}
}

func TestSortStability(t *testing.T) {
	rows := sampleRows()
	// Age 41 appears for IDs 2 and 4, age 29 for IDs 3 and 5; equal keys
	// must keep dataset order.
	page, _ := Process(rows, rowFields, FilterSpec{}, SortSpec{{Field: "age", Direction: Asc}}, PageWindow{Page: 0, PageSize: 10})
	if !reflect.DeepEqual(ids(page), []int{3, 5, 1, 2, 4}) {
		t.Fatalf("expected stable order [3 5 1 2 4], got %v", ids(page))
	}
}

func TestMultiKeySort(t *testing.T) {
	rows := sampleRows()
	spec := SortSpec{
		{Field: "dept", Direction: Asc},
		{Field: "name", Direction: Asc},
	}
	page, _ := Process(rows, rowFields, FilterSpec{}, spec, PageWindow{Page: 0, PageSize: 10})
	// Engineering: Ada Wong, Jane Smith, John Doe; Sales: Bob Stone, doe jane.
	if !reflect.DeepEqual(ids(page), []int{4, 2, 1, 5, 3}) {
		t.Fatalf("expected [4 2 1 5 3], got %v", ids(page))
	}
}

func TestSortDescending(t *testing.T) {
	rows := sampleRows()
	page, _ := Process(rows, rowFields, FilterSpec{}, SortSpec{{Field: "id", Direction: Desc}}, PageWindow{Page: 0, PageSize: 10})
	if !reflect.DeepEqual(ids(page), []int{5, 4, 3, 2, 1}) {
		t.Fatalf("expected [5 4 3 2 1], got %v", ids(page))
	}
}

func TestSortNumericNotLexicographic(t *testing.T) {
	rows := []row{
		{ID: 2, Age: 100},
		{ID: 1, Age: 20},
	}
	page, _ := Process(rows, rowFields, FilterSpec{}, SortSpec{{Field: "age", Direction: Asc}}, PageWindow{Page: 0, PageSize: 10})
	// Lexicographic would put "100" before "20".
	if !reflect.DeepEqual(ids(page), []int{1, 2}) {
		t.Fatalf("expected numeric order [1 2], got %v", ids(page))
	}
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	rows := sampleRows()
	filter := FilterSpec{Conditions: []Condition{{Field: "name", Operator: OpContains, Value: "doe"}}}
	page, total := Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if total != 2 {
		t.Fatalf("expected 2 matches, got %d", total)
	}
	if !reflect.DeepEqual(ids(page), []int{1, 3}) {
		t.Fatalf("expected [1 3], got %v", ids(page))
	}
}

func TestFilterScenarioJane(t *testing.T) {
	rows := []row{
		{ID: 1, Name: "John Doe"},
		{ID: 2, Name: "Jane Smith"},
	}
	filter := FilterSpec{Conditions: []Condition{{Field: "name", Operator: OpContains, Value: "jane"}}}
	page, total := Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if total != 1 {
		t.Fatalf("expected total 1, got %d", total)
	}
	if len(page) != 1 || page[0].ID != 2 {
		t.Fatalf("expected only id 2, got %v", ids(page))
	}
}

func TestPagePastEndScenario(t *testing.T) {
	rows := []row{
		{ID: 1, Name: "John Doe"},
		{ID: 2, Name: "Jane Smith"},
	}
	page, total := Process(rows, rowFields, FilterSpec{}, nil, PageWindow{Page: 5, PageSize: 10})
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %v", ids(page))
	}
	if page == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestStartsWith(t *testing.T) {
	rows := sampleRows()
	filter := FilterSpec{Conditions: []Condition{{Field: "name", Operator: OpStartsWith, Value: "JO"}}}
	page, _ := Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if !reflect.DeepEqual(ids(page), []int{1}) {
		t.Fatalf("expected [1], got %v", ids(page))
	}
}

func TestEqualsUsesStringRepresentation(t *testing.T) {
	rows := sampleRows()
	filter := FilterSpec{Conditions: []Condition{{Field: "age", Operator: OpEquals, Value: "41"}}}
	_, total := Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if total != 2 {
		t.Fatalf("expected 2 matches for age 41, got %d", total)
	}

	// equals is exact on the string form, not case-folded.
	filter = FilterSpec{Conditions: []Condition{{Field: "name", Operator: OpEquals, Value: "john doe"}}}
	_, total = Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if total != 0 {
		t.Fatalf("expected exact equals to miss, got %d matches", total)
	}
}

func TestConditionsAreANDed(t *testing.T) {
	rows := sampleRows()
	filter := FilterSpec{Conditions: []Condition{
		{Field: "dept", Operator: OpEquals, Value: "Engineering"},
		{Field: "age", Operator: OpEquals, Value: "41"},
	}}
	page, _ := Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if !reflect.DeepEqual(ids(page), []int{2, 4}) {
		t.Fatalf("expected [2 4], got %v", ids(page))
	}
}

func TestUnknownOperatorMatchesEverything(t *testing.T) {
	rows := sampleRows()
	filter := FilterSpec{Conditions: []Condition{{Field: "name", Operator: "isEmpty", Value: "x"}}}
	_, total := Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if total != len(rows) {
		t.Fatalf("unknown operator must not exclude rows: got %d of %d", total, len(rows))
	}
}

func TestUnknownFieldMatchesEverything(t *testing.T) {
	rows := sampleRows()
	filter := FilterSpec{Conditions: []Condition{{Field: "nope", Operator: OpContains, Value: "x"}}}
	_, total := Process(rows, rowFields, filter, nil, PageWindow{Page: 0, PageSize: 10})
	if total != len(rows) {
		t.Fatalf("unknown field must not exclude rows: got %d of %d", total, len(rows))
	}
}

func TestClampWindow(t *testing.T) {
	cases := []struct {
		in   PageWindow
		want PageWindow
	}{
		{PageWindow{Page: -3, PageSize: 10}, PageWindow{Page: 0, PageSize: 10}},
		{PageWindow{Page: 2, PageSize: 0}, PageWindow{Page: 2, PageSize: DefaultPageSize}},
		{PageWindow{Page: 0, PageSize: -1}, PageWindow{Page: 0, PageSize: DefaultPageSize}},
		{PageWindow{Page: 0, PageSize: 10_000}, PageWindow{Page: 0, PageSize: MaxPageSize}},
		{PageWindow{Page: 1, PageSize: 25}, PageWindow{Page: 1, PageSize: 25}},
	}
	for _, tc := range cases {
		if got := tc.in.Clamp(); got != tc.want {
			t.Fatalf("Clamp(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

// Package store holds the in-memory employee dataset and answers grid
// queries against it. The dataset is immutable once the Store is built, so
// it is shared by all requests without synchronization.
package store

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/staffgrid/staffgrid/engine/domain"
	"github.com/staffgrid/staffgrid/engine/query"
	"github.com/staffgrid/staffgrid/pkg/fn"
	"github.com/staffgrid/staffgrid/pkg/repo"
)

// employeeFields maps grid column names onto Employee accessors for the
// query engine.
var employeeFields = query.Fields[domain.Employee]{
	"id":         func(e domain.Employee) any { return e.ID },
	"name":       func(e domain.Employee) any { return e.Name },
	"email":      func(e domain.Employee) any { return e.Email },
	"department": func(e domain.Employee) any { return e.Department },
	"title":      func(e domain.Employee) any { return e.Title },
	"salary":     func(e domain.Employee) any { return e.Salary },
	"age":        func(e domain.Employee) any { return e.Age },
	"hiredAt":    func(e domain.Employee) any { return e.HiredAt },
}

// Store serves reads over a fixed dataset.
type Store struct {
	rows []domain.Employee
}

var _ repo.Reader[domain.Employee, int, query.Params] = (*Store)(nil)

// New creates a Store over the given rows. The slice is used as-is and
// must not be mutated afterwards.
func New(rows []domain.Employee) *Store {
	return &Store{rows: rows}
}

// FromFile loads a JSON dataset file (an array of employee objects),
// validates it, and builds a Store. An empty path yields the seed dataset.
func FromFile(path string) (*Store, error) {
	if path == "" {
		return New(domain.SeedEmployees), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var rows []domain.Employee
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if err := domain.ValidateDataset(rows); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return New(rows), nil
}

// Len returns the dataset size.
func (s *Store) Len() int { return len(s.rows) }

// List answers one grid query: filter, sort, and page the dataset. The
// returned total is the match count before pagination.
func (s *Store) List(ctx context.Context, p query.Params) (repo.Page[domain.Employee], error) {
	_, span := otel.Tracer("engine/store").Start(ctx, "store.list")
	defer span.End()

	rows, total := query.Process(s.rows, employeeFields, p.Filter, p.Sort, p.Window)

	span.SetAttributes(
		attribute.Int("grid.total", total),
		attribute.Int("grid.rows", len(rows)),
		attribute.Int("grid.page", p.Window.Clamp().Page),
	)
	return repo.Page[domain.Employee]{Rows: rows, Total: total}, nil
}

// Get returns the employee with the given ID, or domain.ErrNotFound.
func (s *Store) Get(_ context.Context, id int) (domain.Employee, error) {
	for _, e := range s.rows {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, fmt.Errorf("employee %d: %w", id, domain.ErrNotFound)
}

// Departments returns the distinct departments in the dataset with their
// headcounts, sorted by name. Feeds the grid's filter dropdown.
func (s *Store) Departments(_ context.Context) []domain.DepartmentCount {
	groups := fn.GroupBy(s.rows, func(e domain.Employee) string { return e.Department })
	out := make([]domain.DepartmentCount, 0, len(groups))
	for dept, members := range groups {
		out = append(out, domain.DepartmentCount{Department: dept, Count: len(members)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}

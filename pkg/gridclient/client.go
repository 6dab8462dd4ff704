// Package gridclient implements the grid widget's data-source callback
// boundary in Go: it translates {pagination, sortModel, filterModel} into
// the staffgrid HTTP query and the JSON response back into rows plus a
// row count.
package gridclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/staffgrid/staffgrid/engine/domain"
)

// PaginationModel mirrors the widget's paginationModel parameter.
type PaginationModel struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// SortItem is one sortModel entry.
type SortItem struct {
	Field string `json:"field"`
	Sort  string `json:"sort"` // "asc" or "desc"
}

// FilterItem is one filterModel entry.
type FilterItem struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// GetRowsRequest carries the data-source callback's parameters.
type GetRowsRequest struct {
	Pagination  PaginationModel
	SortModel   []SortItem
	FilterModel []FilterItem
}

// GetRowsResult is what the callback hands back to the widget.
type GetRowsResult struct {
	Rows     []domain.Employee
	RowCount int
}

// listResponse matches the server's GET /api/employees body.
type listResponse struct {
	Data  []domain.Employee `json:"data"`
	Total int               `json:"total"`
}

type filterModelWire struct {
	Items []FilterItem `json:"items"`
}

// Client talks to a staffgrid API server. Failures are surfaced to the
// caller as-is; there is no retry or backoff.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpc: &http.Client{}}
}

// GetRows fetches one page of rows for the grid.
func (c *Client) GetRows(ctx context.Context, req GetRowsRequest) (GetRowsResult, error) {
	vals := url.Values{}
	vals.Set("page", strconv.Itoa(req.Pagination.Page))
	vals.Set("pageSize", strconv.Itoa(req.Pagination.PageSize))
	if len(req.SortModel) > 0 {
		raw, err := json.Marshal(req.SortModel)
		if err != nil {
			return GetRowsResult{}, fmt.Errorf("encode sortModel: %w", err)
		}
		vals.Set("sortModel", string(raw))
	}
	if len(req.FilterModel) > 0 {
		raw, err := json.Marshal(filterModelWire{Items: req.FilterModel})
		if err != nil {
			return GetRowsResult{}, fmt.Errorf("encode filterModel: %w", err)
		}
		vals.Set("filterModel", string(raw))
	}

	var body listResponse
	if err := c.getJSON(ctx, "/api/employees?"+vals.Encode(), &body); err != nil {
		return GetRowsResult{}, err
	}
	return GetRowsResult{Rows: body.Data, RowCount: body.Total}, nil
}

// GetEmployee fetches a single record by ID. Unknown IDs return
// domain.ErrNotFound.
func (c *Client) GetEmployee(ctx context.Context, id int) (domain.Employee, error) {
	var emp domain.Employee
	if err := c.getJSON(ctx, "/api/employees/"+strconv.Itoa(id), &emp); err != nil {
		return domain.Employee{}, err
	}
	return emp, nil
}

// Departments fetches the distinct departments with headcounts.
func (c *Client) Departments(ctx context.Context) ([]domain.DepartmentCount, error) {
	var out []domain.DepartmentCount
	if err := c.getJSON(ctx, "/api/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("staffgrid get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("staffgrid get %s: %w", path, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("staffgrid get %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("staffgrid decode %s: %w", path, err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/staffgrid/staffgrid/engine/domain"
	"github.com/staffgrid/staffgrid/engine/query"
	"github.com/staffgrid/staffgrid/pkg/metrics"
	"github.com/staffgrid/staffgrid/pkg/repo"
)

// employeeReader is what the handlers need from the store.
type employeeReader interface {
	repo.Reader[domain.Employee, int, query.Params]
	Departments(ctx context.Context) []domain.DepartmentCount
}

// listResponse is the JSON body for GET /api/employees.
type listResponse struct {
	Data     []domain.Employee `json:"data"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

func newRouter(st employeeReader, reg *metrics.Registry, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /api/employees", handleListEmployees(st, reg, logger))
	mux.HandleFunc("GET /api/employees/{id}", handleGetEmployee(st, reg, logger))
	mux.HandleFunc("GET /api/departments", handleDepartments(st))
	mux.Handle("GET /metrics", reg.Handler())
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleListEmployees(st employeeReader, reg *metrics.Registry, logger *slog.Logger) http.HandlerFunc {
	requests := reg.Counter(metrics.WithLabels("staffgrid_requests_total", "route", "employees"), "Requests served, by route.")
	rowsOut := reg.Counter("staffgrid_rows_returned_total", "Rows returned across all grid queries.")
	duration := reg.Histogram("staffgrid_query_duration_seconds", "Grid query latency.", nil)

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requests.Inc()

		// Malformed sortModel/filterModel degrade to empty specs here;
		// the request is never rejected for them.
		p := query.ParamsFromQuery(r.URL.Query())

		page, err := st.List(r.Context(), p)
		if err != nil {
			logger.Error("grid query failed", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		rowsOut.Add(int64(len(page.Rows)))
		duration.Since(start)
		writeJSON(w, http.StatusOK, listResponse{
			Data:     page.Rows,
			Total:    page.Total,
			Page:     p.Window.Page,
			PageSize: p.Window.PageSize,
		})
	}
}

func handleGetEmployee(st employeeReader, reg *metrics.Registry, logger *slog.Logger) http.HandlerFunc {
	requests := reg.Counter(metrics.WithLabels("staffgrid_requests_total", "route", "employee"), "Requests served, by route.")

	return func(w http.ResponseWriter, r *http.Request) {
		requests.Inc()

		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "id must be an integer")
			return
		}

		emp, err := st.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, "employee not found")
				return
			}
			logger.Error("employee lookup failed", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, emp)
	}
}

func handleDepartments(st employeeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, st.Departments(r.Context()))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

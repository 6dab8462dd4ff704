package domain

import "strconv"

// Salary and age bounds accepted when loading an external dataset file.
const (
	MinSalary = 0
	MaxSalary = 10_000_000
	MinAge    = 16
	MaxAge    = 100
)

// ValidateEmployee checks a single record. Seed data is trusted; this gate
// applies to records loaded from a dataset file.
func ValidateEmployee(e Employee) error {
	if e.ID <= 0 {
		return NewValidationError("id", strconv.Itoa(e.ID), ErrInvalidID)
	}
	if e.Name == "" {
		return NewValidationError("name", e.Name, ErrEmptyName)
	}
	if !ValidDepartments[e.Department] {
		return NewValidationError("department", e.Department, ErrUnknownDepartment)
	}
	if e.Salary < MinSalary || e.Salary > MaxSalary {
		return NewValidationError("salary", strconv.Itoa(e.Salary), ErrSalaryOutOfRange)
	}
	if e.Age < MinAge || e.Age > MaxAge {
		return NewValidationError("age", strconv.Itoa(e.Age), ErrAgeOutOfRange)
	}
	return nil
}

// ValidateDataset checks every record and ID uniqueness across the set.
func ValidateDataset(employees []Employee) error {
	seen := make(map[int]bool, len(employees))
	for _, e := range employees {
		if err := ValidateEmployee(e); err != nil {
			return err
		}
		if seen[e.ID] {
			return NewValidationError("id", strconv.Itoa(e.ID), ErrDuplicateID)
		}
		seen[e.ID] = true
	}
	return nil
}

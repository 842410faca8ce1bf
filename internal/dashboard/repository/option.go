package repository

import "time"

// ListTasksOptions holds filter and ordering parameters for listing tasks.
// All non-empty filters are applied as AND conditions.
type ListTasksOptions struct {
	Company           string   // party_name equals
	Member            string   // team_member_name or employee_name_1 equals
	Statuses          []string // status in list
	IncludeNullStatus bool     // also match rows whose status is NULL
	Planned3From      time.Time
	Planned3To        time.Time
	OrderBy           string // Column name; defaults to id
	Descending        bool
}

// CountTasksOptions holds filter parameters for counting tasks.
type CountTasksOptions struct {
	Company   string
	Member    string
	Pending   bool // planned3 set and actual3 NULL
	Completed bool // actual3 set
}

// UpdateTaskOptions holds the columns to write on the row with TaskNo.
type UpdateTaskOptions struct {
	TaskNo string
	Fields map[string]string
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	repo "fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

// ListMembers returns every dropdown row.
func (r *implRepository) ListMembers(ctx context.Context) ([]model.DropdownEntry, error) {
	query := fmt.Sprintf(`SELECT "member_name", "team_name" FROM %s`, memberTable)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMembers"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	var entries []model.DropdownEntry
	for rows.Next() {
		var e model.DropdownEntry
		if err := rows.Scan(&e.MemberName, &e.TeamName); err != nil {
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindTeamName matches member_name case-insensitively.
func (r *implRepository) FindTeamName(ctx context.Context, member string) (string, error) {
	member = strings.ToLower(strings.TrimSpace(member))
	if member == "" {
		return "", nil
	}
	query := fmt.Sprintf(`SELECT "team_name" FROM %s WHERE lower("member_name") = ? LIMIT 1`, memberTable)

	var team model.Value
	err := r.db.QueryRowContext(ctx, query, member).Scan(&team)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindTeamName"), err)
		return "", fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	return team.Trim(), nil
}

// ImportMembers inserts dropdown rows in one transaction.
func (r *implRepository) ImportMembers(ctx context.Context, entries []model.DropdownEntry) (int, error) {
	query := fmt.Sprintf(`INSERT INTO %s ("member_name", "team_name") VALUES (?, ?)`, memberTable)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for i, e := range entries {
		if _, err := tx.ExecContext(ctx, query, e.MemberName, e.TeamName); err != nil {
			return 0, fmt.Errorf("import member %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(entries), nil
}

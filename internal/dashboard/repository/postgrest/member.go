package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	repo "fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
)

// ListMembers returns every dropdown row.
func (r *implRepository) ListMembers(ctx context.Context) ([]model.DropdownEntry, error) {
	q := url.Values{}
	q.Set("select", "member_name,team_name")

	var entries []model.DropdownEntry
	if err := r.client.Select(ctx, memberTable, q, &entries); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMembers"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return entries, nil
}

// FindTeamName looks the member up with ilike, which without wildcards is a
// case-insensitive equality.
func (r *implRepository) FindTeamName(ctx context.Context, member string) (string, error) {
	member = strings.ToLower(strings.TrimSpace(member))
	if member == "" {
		return "", nil
	}

	q := url.Values{}
	q.Set("select", "team_name,member_name")
	q.Set("member_name", "ilike."+member)
	q.Set("limit", "1")

	var entries []model.DropdownEntry
	if err := r.client.Select(ctx, memberTable, q, &entries); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindTeamName"), err)
		return "", fmt.Errorf("%w: %v", repo.ErrFailedToGet, err)
	}
	if len(entries) == 0 {
		return "", nil
	}
	return entries[0].TeamName.Trim(), nil
}

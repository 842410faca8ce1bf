package postgrest

import (
	"fmt"

	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/pkg/log"
)

const (
	taskTable   = "FMS"
	memberTable = "dropdown"
)

type implRepository struct {
	client *Client
	l      log.Logger
}

// New creates a PostgREST-backed Repository for the dashboard domain.
func New(client *Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("dashboard/repository/postgrest: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dashboard/repository/postgrest.%s", method)
}

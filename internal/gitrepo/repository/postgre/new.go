package postgre

import (
	"database/sql"
	"fmt"

	"teamboard/internal/gitrepo/repository"
	"teamboard/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the git repository domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("gitrepo/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("gitrepo/repository/postgre.%s", method)
}

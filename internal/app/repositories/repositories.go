package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles the data access layer for the record store.
type Repositories struct {
	StudentRepository *StudentRepository
	RoleRepository    *RoleRepository
}

// NewRepositories creates the repository container.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		RoleRepository:    NewRoleRepository(db),
	}
}

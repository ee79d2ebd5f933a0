package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sample-hr/employee-admin/internal/model"
)

// AdministratorRepository handles administrator data access.
type AdministratorRepository struct {
	db *sqlx.DB
}

// NewAdministratorRepository creates a new AdministratorRepository.
func NewAdministratorRepository(db *sqlx.DB) *AdministratorRepository {
	return &AdministratorRepository{db: db}
}

// Insert stores a new administrator and returns the identifier the store
// assigned. admin.ID is ignored.
func (r *AdministratorRepository) Insert(ctx context.Context, admin model.Administrator) (int, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, administratorsTable.insertSQL())
	if err != nil {
		return 0, wrap("insert administrator", err)
	}
	defer stmt.Close()

	var id int
	if err := stmt.GetContext(ctx, &id, admin); err != nil {
		return 0, wrap("insert administrator", err)
	}
	return id, nil
}

// FindByCredentials returns the administrator whose mail address and
// password both equal the given values. When several match, the lowest id
// wins. Returns ErrNotFound when none match.
func (r *AdministratorRepository) FindByCredentials(ctx context.Context, mailAddress, password string) (model.Administrator, error) {
	query := r.db.Rebind(administratorsTable.selectSQL() +
		" WHERE mail_address = ? AND password = ? ORDER BY id LIMIT 1")

	var a model.Administrator
	if err := r.db.GetContext(ctx, &a, query, mailAddress, password); err != nil {
		return model.Administrator{}, wrap("find administrator", err)
	}
	return a, nil
}

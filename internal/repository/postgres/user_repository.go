package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, account user.User) (*user.User, error) {
	account.CreatedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, `INSERT INTO users (username, email, password_hash, role, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		account.Username, account.Email, account.PasswordHash, account.Role, account.FullName, account.CreatedAt).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "username or email already taken", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &account, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, username, email, password_hash, role, full_name, created_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByLogin resolves either a username or an email; the login form accepts
// both.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, username, email, password_hash, role, full_name, created_at FROM users WHERE username = $1 OR email = $1`, login)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*user.User, error) {
	var account user.User
	if err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.Role, &account.FullName, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &account, nil
}

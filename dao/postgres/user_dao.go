package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roomshare-server/apperr"
	"roomshare-server/models"
)

// UserDAO reads account records. Account creation and credentials belong
// to the auth system; this app only needs lookups.
type UserDAO struct {
	db *sql.DB
}

func NewUserDAO(db *sql.DB) *UserDAO {
	return &UserDAO{db: db}
}

// GetByID returns a user or a NOT_FOUND error.
func (dao *UserDAO) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := dao.db.QueryRowContext(ctx, `
		SELECT id, email, name, email_verified, suspended, created_at
		FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.EmailVerified, &u.Suspended, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.CodeNotFound, "User not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

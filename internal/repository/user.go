package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProfile(ctx context.Context, username, email, avatar string) error
}

type dbUser struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &dbUser{db: db}
}

func (that *dbUser) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`

	_, err := that.db.ExecContext(ctx, query, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (that *dbUser) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT username, email, password_hash, avatar FROM users WHERE username = ?`

	var user entity.User
	err := that.db.QueryRowContext(ctx, query, username).
		Scan(&user.Username, &user.Email, &user.PasswordHash, &user.Avatar)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

func (that *dbUser) UpdateProfile(ctx context.Context, username, email, avatar string) error {
	query := `UPDATE users SET email = ?, avatar = ? WHERE username = ?`

	result, err := that.db.ExecContext(ctx, query, email, avatar, username)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return apperror.ErrNotFound
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"members_roulette/internal/common"
	"members_roulette/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, username, email, role, created_at FROM users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgUserRepository.List: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	return users, nil
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, username, email, hashed_password, role, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.HashedPassword, user.Role, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, username, email, hashed_password, role, created_at
	          FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "FindByID")
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, email, hashed_password, role, created_at
	          FROM users WHERE username = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username), "FindByUsername")
}

func (r *pgUserRepository) scanOne(row *sql.Row, op string) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.%s: %w", op, err)
	}
	return user, nil
}

func (r *pgUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("pgUserRepository.ExistsByUsernameOrEmail: %w", err)
	}
	return exists, nil
}

func (r *pgUserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET username = $1, email = $2, role = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.Role, user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user with given username or email already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mptransport/models"
)

type PostgresUserRepo struct {
	DB Querier
}

func NewPostgresUserRepo(db Querier) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

const userColumns = `id, name, password, type, mobile_number, status, created_at, updated_at`

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Password, &u.Type, &u.MobileNumber, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts the user and fills in the generated id.
func (r *PostgresUserRepo) Create(ctx context.Context, user *models.User) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (name, password, type, mobile_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, user.Name, user.Password, user.Type, user.MobileNumber, user.Status, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", user.Name, mapErr(err))
	}
	return nil
}

func (r *PostgresUserRepo) one(ctx context.Context, query string, args ...any) (*models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *PostgresUserRepo) many(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	list := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *PostgresUserRepo) Get(ctx context.Context, id int64) (*models.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepo) GetByName(ctx context.Context, name string) (*models.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1 LIMIT 1`, name)
}

func (r *PostgresUserRepo) SearchByName(ctx context.Context, name string) ([]*models.User, error) {
	return r.many(ctx, `SELECT `+userColumns+` FROM users WHERE name ILIKE $1 ORDER BY name ASC`, likePattern(name))
}

func (r *PostgresUserRepo) List(ctx context.Context) ([]*models.User, error) {
	return r.many(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
}

func (r *PostgresUserRepo) Update(ctx context.Context, user *models.User) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET name=$1, password=$2, type=$3, mobile_number=$4, status=$5, updated_at=$6
		WHERE id=$7
	`, user.Name, user.Password, user.Type, user.MobileNumber, user.Status, user.UpdatedAt, user.ID)
	if err != nil {
		return false, fmt.Errorf("update user %d: %w", user.ID, err)
	}
	return rowsAffected(res)
}

func (r *PostgresUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	return rowsAffected(res)
}

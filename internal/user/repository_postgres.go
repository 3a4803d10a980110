package user

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `email, password, name, gender, coalesce(view_history, ARRAY[]::text[]), must_change_password, created_at, updated_at`

	getUserQuery    = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	listUsersQuery  = `SELECT ` + userColumns + ` FROM users ORDER BY email`
	createUserQuery = `
		INSERT INTO users (email, password, name, gender, view_history, must_change_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	updateUserQuery = `
		UPDATE users
		SET password = $2, name = $3, gender = $4, must_change_password = $5, updated_at = $6
		WHERE email = $1
	`
	appendHistoryQuery = `
		UPDATE users
		SET view_history = (
			SELECT array_agg(v) FROM (
				SELECT unnest(array_append(coalesce(view_history, ARRAY[]::text[]), $2)) AS v
				OFFSET greatest(cardinality(coalesce(view_history, ARRAY[]::text[])) + 1 - $3, 0)
			) trimmed
		)
		WHERE email = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []User {
	rows, err := r.db.Query(listUsersQuery)
	if err != nil {
		return []User{}
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return []User{}
		}
		out = append(out, u)
	}
	return out
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	u, err := scanUser(r.db.QueryRow(getUserQuery, email))
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *PostgresRepository) Create(u User) (User, error) {
	_, err := r.db.Exec(createUserQuery,
		u.Email, u.Password, u.Name, u.Gender, pq.StringArray(u.ViewHistory),
		u.MustChangePassword, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Update(email string, u User) (User, error) {
	res, err := r.db.Exec(updateUserQuery,
		email, u.Password, u.Name, u.Gender, u.MustChangePassword, u.UpdatedAt)
	if err != nil {
		return User{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if affected == 0 {
		return User{}, ErrNotFound
	}
	u.Email = email
	return u, nil
}

func (r *PostgresRepository) Delete(email string) error {
	res, err := r.db.Exec(`DELETE FROM users WHERE email = $1`, email)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AppendViewHistory(email, category string) error {
	res, err := r.db.Exec(appendHistoryQuery, email, category, viewHistoryCap)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var (
		u       User
		gender  sql.NullString
		history pq.StringArray
		created sql.NullString
		updated sql.NullString
	)
	err := row.Scan(&u.Email, &u.Password, &u.Name, &gender, &history,
		&u.MustChangePassword, &created, &updated)
	if err != nil {
		return User{}, err
	}
	u.Gender = gender.String
	u.ViewHistory = []string(history)
	u.CreatedAt = created.String
	u.UpdatedAt = updated.String
	return u, nil
}

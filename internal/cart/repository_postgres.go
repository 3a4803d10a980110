package cart

import (
	"database/sql"
	"encoding/json"
)

// PostgresRepository stores each user's cart as a jsonb snapshot on the
// users row, so a cart read or write is a single-row operation.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetCart(email string) (Cart, error) {
	var raw sql.NullString
	if err := r.db.QueryRow(`SELECT cart FROM users WHERE email = $1`, email).Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}

	if !raw.Valid || raw.String == "" {
		return Cart{}, nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw.String), &lines); err != nil {
		return Cart{}, err
	}
	return Cart{Lines: lines}, nil
}

func (r *PostgresRepository) SaveCart(email string, c Cart, updatedAt string) error {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	res, err := r.db.Exec(`UPDATE users SET cart = $1, updated_at = $2 WHERE email = $3`,
		string(raw), updatedAt, email)
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

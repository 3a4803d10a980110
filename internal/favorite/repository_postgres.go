package favorite

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	addFavoriteQuery = `
		UPDATE users
		SET favorite_product_ids = array_append(coalesce(favorite_product_ids, ARRAY[]::text[]), $2),
			updated_at = $3
		WHERE email = $1
			AND NOT ($2 = ANY(coalesce(favorite_product_ids, ARRAY[]::text[])))
		RETURNING favorite_product_ids
	`
	removeFavoriteQuery = `
		UPDATE users
		SET favorite_product_ids = array_remove(coalesce(favorite_product_ids, ARRAY[]::text[]), $2),
			updated_at = $3
		WHERE email = $1
		RETURNING favorite_product_ids
	`
	listFavoritesQuery = `
		SELECT coalesce(favorite_product_ids, ARRAY[]::text[]) FROM users WHERE email = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(email, productID string, updatedAt string) ([]string, error) {
	var arr pq.StringArray
	err := r.db.QueryRow(addFavoriteQuery, email, productID, updatedAt).Scan(&arr)
	if err == sql.ErrNoRows {
		// already a favorite, or the user row is missing
		return r.List(email)
	}
	if err != nil {
		return nil, err
	}
	return []string(arr), nil
}

func (r *PostgresRepository) Remove(email, productID string, updatedAt string) ([]string, error) {
	var arr pq.StringArray
	err := r.db.QueryRow(removeFavoriteQuery, email, productID, updatedAt).Scan(&arr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []string(arr), nil
}

func (r *PostgresRepository) List(email string) ([]string, error) {
	var arr pq.StringArray
	err := r.db.QueryRow(listFavoritesQuery, email).Scan(&arr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []string(arr), nil
}
